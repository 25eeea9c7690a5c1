// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

//go:build unix

package launcher

import "syscall"

// Exec replaces the current process image with the target executable.
// It returns only if the exec itself fails.
func (ProcessHandoff) Exec(path string, argv []string, env []string) error {
	return syscall.Exec(path, argv, env)
}
