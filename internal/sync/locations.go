// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sync

import (
	"fmt"
	"os"

	"github.com/pdiddy/savesync/pkg/types"
)

// EnsureLocations validates the configured directories before any scan. The
// card base, card saves directory, and tools directory must already exist;
// the local saves directory is created when missing. Any failure here is
// fatal to the run, since there is nothing to sync without valid locations.
func EnsureLocations(cfg types.SyncConfig) error {
	if err := requireDir(cfg.Locations.CardBase, "card base path (is the card inserted and mounted?)"); err != nil {
		return err
	}
	if err := requireDir(cfg.Locations.CardSaves, "card saves directory"); err != nil {
		return err
	}
	if err := requireDir(cfg.Locations.ToolsDir, "conversion tools directory"); err != nil {
		return err
	}

	info, err := os.Stat(cfg.Locations.LocalSaves)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(cfg.Locations.LocalSaves, 0o755); err != nil {
			return fmt.Errorf("creating local saves directory %s: %w", cfg.Locations.LocalSaves, err)
		}
	case err != nil:
		return fmt.Errorf("checking local saves directory %s: %w", cfg.Locations.LocalSaves, err)
	case !info.IsDir():
		return fmt.Errorf("local saves path %s is not a directory", cfg.Locations.LocalSaves)
	}
	return nil
}

func requireDir(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s not found: %s", what, path)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %s", what, path)
	}
	return nil
}
