// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration structures shared across savesync
// stages. Configuration is decoded once at startup and passed explicitly
// into the scanner and director; nothing reads these values as ambient
// global state.
package types

import "time"

// NamingConfig describes the file-naming conventions of the two storage
// locations. The card stores saves as <title><platform_tag><card_ext>
// (e.g. "mario.gba.sav"); the local folder stores <title><local_ext>
// (e.g. "mario.srm").
type NamingConfig struct {
	// CardExt is the save extension used on the card (default ".sav").
	CardExt string `json:"card_ext" yaml:"card_ext"`

	// PlatformTag is the platform suffix embedded in card filenames
	// (default ".gba"). It is stripped when deriving the comparison key
	// and appended again when writing into the card location.
	PlatformTag string `json:"platform_tag" yaml:"platform_tag"`

	// LocalExt is the save extension used locally (default ".srm").
	LocalExt string `json:"local_ext" yaml:"local_ext"`
}

// LocationsConfig holds the filesystem roots the sync operates on.
type LocationsConfig struct {
	// CardBase is the mount point of the removable card. It must exist;
	// a missing card base usually means the card is not inserted.
	CardBase string `json:"card_base" yaml:"card_base"`

	// CardSaves is the saves directory on the card.
	CardSaves string `json:"card_saves" yaml:"card_saves"`

	// LocalSaves is the local saves directory. Created if missing.
	LocalSaves string `json:"local_saves" yaml:"local_saves"`

	// ToolsDir is the directory containing the external conversion
	// scripts. It must exist.
	ToolsDir string `json:"tools_dir" yaml:"tools_dir"`
}

// ToolsConfig names the external conversion tools, one per direction.
// Each ID resolves to a script inside LocationsConfig.ToolsDir.
type ToolsConfig struct {
	// Interpreter runs the conversion scripts (default "python3").
	Interpreter string `json:"interpreter" yaml:"interpreter"`

	// CardToLocal is the tool ID for card-format to local-format
	// conversion (default "sav-to-srm").
	CardToLocal string `json:"card_to_local" yaml:"card_to_local"`

	// LocalToCard is the tool ID for local-format to card-format
	// conversion (default "srm-to-sav").
	LocalToCard string `json:"local_to_card" yaml:"local_to_card"`
}

// SyncConfig groups all settings for one sync run.
type SyncConfig struct {
	Locations LocationsConfig `json:"locations" yaml:"locations"`
	Naming    NamingConfig    `json:"naming" yaml:"naming"`
	Tools     ToolsConfig     `json:"tools" yaml:"tools"`

	// Tolerance is the modification-time slack within which two records
	// count as simultaneous (default 1s). Filesystems on removable media
	// often round timestamps, so exact equality is too strict.
	Tolerance time.Duration `json:"tolerance" yaml:"tolerance"`
}

// DefaultSyncConfig returns the stock Steam Deck MinUI/RetroArch layout.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		Locations: LocationsConfig{
			CardBase:   "/run/media/deck/MINUI",
			CardSaves:  "/run/media/deck/MINUI/Saves/GBA",
			LocalSaves: "/home/deck/Documents/emulation/Emulation/saves/retroarch/saves",
			ToolsDir:   "srm-to-sav",
		},
		Naming: NamingConfig{
			CardExt:     ".sav",
			PlatformTag: ".gba",
			LocalExt:    ".srm",
		},
		Tools: ToolsConfig{
			Interpreter: "python3",
			CardToLocal: "sav-to-srm",
			LocalToCard: "srm-to-sav",
		},
		Tolerance: time.Second,
	}
}
