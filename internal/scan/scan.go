// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan lists save files in a directory and normalizes each to a
// comparison key, so the card and local naming conventions collapse to the
// same bare game title.
package scan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/savesync/pkg/types"
)

// metadataPrefix marks AppleDouble resource-fork files that macOS leaves on
// FAT-formatted cards. They are never save data.
const metadataPrefix = "._"

// FileRecord describes one save file found during a scan. Immutable once
// produced.
type FileRecord struct {
	// Key is the lower-cased bare game title used for cross-location
	// comparison ("mario" for both "Mario.gba.sav" and "mario.srm").
	Key string

	// Path is the full path to the file.
	Path string

	// ModTime is the file's last modification time.
	ModTime time.Time

	// Ext is the matched extension, lower-cased (".sav" or ".srm").
	Ext string
}

// Snapshot maps comparison keys to the file record found for that key in one
// location. Keys are unique within a snapshot; a snapshot is built fresh on
// every call and never cached across runs.
type Snapshot map[string]FileRecord

// Dir scans directory dir for files whose extension (case-insensitive) is in
// exts and returns a snapshot keyed by bare game title. A nonexistent
// directory yields an empty snapshot, not an error. Files whose metadata
// cannot be read are skipped with a warning on warn; the scan continues.
func Dir(dir string, exts []string, naming types.NamingConfig, warn io.Writer) Snapshot {
	snap := make(Snapshot)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(warn, "warning: could not list %s: %v\n", dir, err)
		}
		return snap
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, metadataPrefix) {
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if !extAllowed(ext, exts) {
			continue
		}

		full := filepath.Join(dir, name)
		// Stat follows symlinks, so a link to a regular file counts and a
		// link to a directory is excluded, like the file itself would be.
		info, err := os.Stat(full)
		if err != nil {
			fmt.Fprintf(warn, "warning: could not get file information for %s: %v\n", full, err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		k := key(name, ext, naming)
		snap[k] = FileRecord{
			Key:     k,
			Path:    full,
			ModTime: info.ModTime(),
			Ext:     ext,
		}
	}

	return snap
}

// key derives the comparison key for filename with the already-matched
// extension ext. The extension is removed; when ext is the card save
// extension and the remainder still ends in the platform tag
// ("mario.gba" from "mario.gba.sav"), the tag is stripped too.
func key(filename, ext string, naming types.NamingConfig) string {
	base := strings.ToLower(strings.TrimSuffix(filename, filepath.Ext(filename)))
	if ext == strings.ToLower(naming.CardExt) && strings.HasSuffix(base, strings.ToLower(naming.PlatformTag)) {
		base = strings.TrimSuffix(base, strings.ToLower(naming.PlatformTag))
	}
	return base
}

func extAllowed(ext string, exts []string) bool {
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
