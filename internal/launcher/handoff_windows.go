// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

//go:build windows

package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// Exec emulates process replacement on Windows: spawn the target with
// inherited standard streams, then exit immediately with its status.
// It returns only if the target fails to start.
func (ProcessHandoff) Exec(path string, argv []string, env []string) error {
	cmd := exec.Command(path)
	cmd.Args = argv
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return err
	}
	os.Exit(0)
	return nil
}
