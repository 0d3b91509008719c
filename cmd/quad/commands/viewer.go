// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/quad-market/quad/cmd/quad/cli"
)

// viewerExecFunc replaces the current process with the viewer binary.
// Defaults to syscall.Exec. Tests override this to capture the exec
// call instead of actually replacing the process.
var viewerExecFunc = syscall.Exec

// viewerCommand returns the "viewer" command, which dispatches to the
// quad-viewer companion binary. Search order: the directory of the
// current quad binary first (the binaries are installed together),
// then PATH.
func viewerCommand() *cli.Command {
	return &cli.Command{
		Name:    "viewer",
		Summary: "Open the interactive marketplace TUI",
		Usage:   "quad viewer [flags]",
		Run: func(args []string) error {
			path := findViewerBinary()
			if path == "" {
				return fmt.Errorf("quad-viewer binary not found next to quad or on PATH")
			}

			argv := make([]string, 0, 1+len(args))
			argv = append(argv, path)
			argv = append(argv, args...)
			if err := viewerExecFunc(path, argv, os.Environ()); err != nil {
				return fmt.Errorf("exec %s: %w", path, err)
			}
			return nil
		},
	}
}

func findViewerBinary() string {
	if selfPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(selfPath), "quad-viewer")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	if path, err := exec.LookPath("quad-viewer"); err == nil {
		return path
	}
	return ""
}
