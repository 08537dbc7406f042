// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert wraps the external save-format conversion tools. Each tool
// is a script that takes an input path and an output path and signals
// success through its exit status.
package convert

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Tool converts a save file from one format to another. The production
// implementation spawns an external script; tests substitute a double.
type Tool interface {
	// Convert reads the save at inputPath and writes the converted save
	// to outputPath. On failure outputPath may or may not exist; partial
	// output is not cleaned up.
	Convert(inputPath, outputPath string) error
}

// ErrToolNotFound indicates the tool ID did not resolve to an existing
// regular file in the tools directory.
var ErrToolNotFound = errors.New("conversion tool not found")

// ToolError is the single failure type for a conversion attempt, covering
// both a nonzero exit status and a failure to launch the process at all.
// Stdout and Stderr carry the tool's trimmed output for diagnostics.
type ToolError struct {
	Tool   string
	Input  string
	Output string
	Stdout string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("conversion failed for %s -> %s using %s: %v",
		filepath.Base(e.Input), filepath.Base(e.Output), e.Tool, e.Err)
	if e.Stderr != "" {
		msg += "\nstderr: " + e.Stderr
	}
	if e.Stdout != "" {
		msg += "\nstdout: " + e.Stdout
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }
