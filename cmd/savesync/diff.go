// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/savesync/internal/compare"
	"github.com/pdiddy/savesync/internal/scan"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Report differences between the two locations without syncing",
	Long: `Diff scans the card and local saves directories and prints the
difference report: files unique to either side and conflicts. Nothing is
modified; missing directories simply produce empty listings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		cardSnap := scan.Dir(cfg.Locations.CardSaves, []string{cfg.Naming.CardExt}, cfg.Naming, os.Stderr)
		localSnap := scan.Dir(cfg.Locations.LocalSaves, []string{cfg.Naming.LocalExt}, cfg.Naming, os.Stderr)

		diff := compare.Snapshots(cardSnap, localSnap, cfg.Tolerance)
		compare.Print(os.Stdout, diff, "card", "local")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
