// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config resolves defaults, the config file, and SAVESYNC_*
environment variables, and prints the configuration the other commands
would run with.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("rendering config: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
