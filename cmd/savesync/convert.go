// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/savesync/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <tool-id>",
	Short: "Run a single conversion tool directly",
	Long: `Convert invokes one external conversion tool ("sav-to-srm" or
"srm-to-sav") on a single file, bypassing scanning and comparison. Useful
for spot-converting one save or checking that a tool works.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")

		tool, err := convert.NewScriptTool(cfg.Locations.ToolsDir, args[0], cfg.Tools.Interpreter)
		if err != nil {
			return err
		}
		if err := tool.Convert(input, output); err != nil {
			return err
		}
		fmt.Printf("converted: %s -> %s\n", input, output)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "input save file")
	convertCmd.Flags().StringP("output", "o", "", "output save file")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(convertCmd)
}
