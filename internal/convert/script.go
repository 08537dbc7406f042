// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// scriptExt is the extension appended when resolving a tool ID to a script
// file inside the tools directory.
const scriptExt = ".py"

// executor abstracts command execution for testing.
type executor interface {
	// RunCapture runs name with args in working directory dir, capturing
	// both output streams. A nonzero exit status is returned as an error
	// alongside whatever output the process produced.
	RunCapture(dir, name string, args ...string) (stdout, stderr string, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) RunCapture(dir, name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return out.String(), errBuf.String(), err
}

var defaultExec executor = &osExecutor{}

// ScriptTool runs one external conversion script through an interpreter.
// Input and output paths are passed as discrete argv entries behind -i and
// -o flags, never joined into a shell string, so paths with whitespace
// survive intact.
type ScriptTool struct {
	id          string
	script      string
	dir         string
	interpreter string
	exec        executor
}

// NewScriptTool resolves id to a script in toolsDir and returns a tool that
// runs it with interpreter. It fails with ErrToolNotFound when the resolved
// path does not exist or is not a regular file.
func NewScriptTool(toolsDir, id, interpreter string) (*ScriptTool, error) {
	return newScriptTool(toolsDir, id, interpreter, defaultExec)
}

func newScriptTool(toolsDir, id, interpreter string, exec executor) (*ScriptTool, error) {
	script := filepath.Join(toolsDir, id+scriptExt)
	info, err := os.Stat(script)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, script)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrToolNotFound, script)
	}
	return &ScriptTool{
		id:          id,
		script:      script,
		dir:         toolsDir,
		interpreter: interpreter,
		exec:        exec,
	}, nil
}

// ID returns the tool identifier ("sav-to-srm", "srm-to-sav").
func (t *ScriptTool) ID() string { return t.id }

// Convert runs the script with inputPath and outputPath, creating the
// output's parent directory first. Any failure, whether a nonzero exit or
// an unlaunchable process, is reported as a *ToolError.
func (t *ScriptTool) Convert(inputPath, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	// The working directory is the tools directory; the scripts use
	// imports relative to their own location.
	stdout, stderr, err := t.exec.RunCapture(t.dir, t.interpreter, t.script, "-i", inputPath, "-o", outputPath)
	if err != nil {
		return &ToolError{
			Tool:   t.id,
			Input:  inputPath,
			Output: outputPath,
			Stdout: strings.TrimSpace(stdout),
			Stderr: strings.TrimSpace(stderr),
			Err:    err,
		}
	}
	return nil
}
