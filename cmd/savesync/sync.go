// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/savesync/internal/compare"
	"github.com/pdiddy/savesync/internal/convert"
	"github.com/pdiddy/savesync/internal/scan"
	"github.com/pdiddy/savesync/internal/sync"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scan both locations, report differences, and sync a direction",
	Long: `Sync scans the card and local saves directories, prints the
differences, and prompts for a direction. Files unique to the source side
are converted over; conflicts go to the newer side. Each item succeeds or
fails independently; one bad file never aborts the batch.

Pass --direction to skip the prompt, or --dry-run to see the decisions
without invoking any conversion tool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if err := sync.EnsureLocations(cfg); err != nil {
			return err
		}

		cardSnap := scan.Dir(cfg.Locations.CardSaves, []string{cfg.Naming.CardExt}, cfg.Naming, os.Stderr)
		localSnap := scan.Dir(cfg.Locations.LocalSaves, []string{cfg.Naming.LocalExt}, cfg.Naming, os.Stderr)
		fmt.Printf("Found %d save files on the card in %s.\n", len(cardSnap), cfg.Locations.CardSaves)
		fmt.Printf("Found %d save files locally in %s.\n", len(localSnap), cfg.Locations.LocalSaves)

		diff := compare.Snapshots(cardSnap, localSnap, cfg.Tolerance)
		compare.Print(os.Stdout, diff, "card", "local")
		if diff.Empty() {
			return nil
		}

		var direction sync.Direction
		if flag, _ := cmd.Flags().GetString("direction"); flag != "" {
			var err error
			if direction, err = sync.ParseDirection(flag); err != nil {
				return err
			}
		} else {
			dir, proceed, err := promptDirection(os.Stdin, os.Stdout)
			if err != nil {
				return err
			}
			if !proceed {
				fmt.Println("Exiting without syncing.")
				return nil
			}
			direction = dir
		}

		toolID := cfg.Tools.CardToLocal
		if direction == sync.LocalToCard {
			toolID = cfg.Tools.LocalToCard
		}
		tool, err := convert.NewScriptTool(cfg.Locations.ToolsDir, toolID, cfg.Tools.Interpreter)
		if err != nil {
			return err
		}

		director := sync.NewDirector(tool, cfg, os.Stdout)
		director.DryRun, _ = cmd.Flags().GetBool("dry-run")
		director.Run(direction, diff)
		return nil
	},
}

func init() {
	syncCmd.Flags().String("direction", "", "sync direction: card-to-local or local-to-card (default: prompt)")
	syncCmd.Flags().Bool("dry-run", false, "print decisions without invoking conversion tools")

	rootCmd.AddCommand(syncCmd)
}
