// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package launcher

// Handoff transfers control of the current process to the executable at
// path. This abstraction enables observing the hand-off in tests without
// replacing the test process.
//
// Implementations must not forward any of the launcher's own arguments
// and must pass the environment through unmodified. On success the call
// never returns: no launcher code runs after the hand-off.
type Handoff interface {
	Exec(path string, argv []string, env []string) error
}

// ProcessHandoff replaces the current process image with the target.
// On platforms without exec semantics it spawns the target with
// inherited standard streams and exits with the target's status, which
// preserves the "no code runs after hand-off" contract.
type ProcessHandoff struct{}
