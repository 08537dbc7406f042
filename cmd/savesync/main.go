// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the savesync CLI, which reconciles
// emulator save files between a removable card and a local saves folder.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/savesync/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the savesync CLI.
var rootCmd = &cobra.Command{
	Use:   "savesync",
	Short: "Reconcile save-game files between a card and a local folder",
	Long: `savesync reconciles emulator save files between a removable card
(MinUI layout, <title>.gba.sav) and a local RetroArch saves folder
(<title>.srm). Save formats differ between the two, so every copy is a
conversion performed by an external helper tool.

The sync subcommand scans both locations, reports the differences, and
drives conversions for a chosen direction. diff reports without syncing;
convert invokes a single conversion tool directly.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./savesync.yaml or ~/.config/savesync/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("savesync")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "savesync"))
		}
	}

	viper.SetEnvPrefix("SAVESYNC")
	viper.AutomaticEnv()

	def := types.DefaultSyncConfig()
	viper.SetDefault("locations.card_base", def.Locations.CardBase)
	viper.SetDefault("locations.card_saves", def.Locations.CardSaves)
	viper.SetDefault("locations.local_saves", def.Locations.LocalSaves)
	viper.SetDefault("locations.tools_dir", def.Locations.ToolsDir)
	viper.SetDefault("naming.card_ext", def.Naming.CardExt)
	viper.SetDefault("naming.platform_tag", def.Naming.PlatformTag)
	viper.SetDefault("naming.local_ext", def.Naming.LocalExt)
	viper.SetDefault("tools.interpreter", def.Tools.Interpreter)
	viper.SetDefault("tools.card_to_local", def.Tools.CardToLocal)
	viper.SetDefault("tools.local_to_card", def.Tools.LocalToCard)
	viper.SetDefault("tolerance", def.Tolerance)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the effective configuration from viper. The
// result is passed explicitly into the scanner and director; nothing else
// reads viper after this point.
func loadConfig() types.SyncConfig {
	return types.SyncConfig{
		Locations: types.LocationsConfig{
			CardBase:   viper.GetString("locations.card_base"),
			CardSaves:  viper.GetString("locations.card_saves"),
			LocalSaves: viper.GetString("locations.local_saves"),
			ToolsDir:   viper.GetString("locations.tools_dir"),
		},
		Naming: types.NamingConfig{
			CardExt:     viper.GetString("naming.card_ext"),
			PlatformTag: viper.GetString("naming.platform_tag"),
			LocalExt:    viper.GetString("naming.local_ext"),
		},
		Tools: types.ToolsConfig{
			Interpreter: viper.GetString("tools.interpreter"),
			CardToLocal: viper.GetString("tools.card_to_local"),
			LocalToCard: viper.GetString("tools.local_to_card"),
		},
		Tolerance: viper.GetDuration("tolerance"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
