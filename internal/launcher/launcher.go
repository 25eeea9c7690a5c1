// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package launcher implements the Atlas Terminal boot sequence: resolve
// the install directory, clear the screen, print the banner and
// deprecation notice, show an occasional tip, and hand the process over
// to the bundled terminal executable.
package launcher

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/llbbl/atlas-launcher/internal/logging"
)

// Launcher runs the fixed boot sequence and becomes the bundled terminal.
// The zero value is not usable; construct with New.
type Launcher struct {
	// Out receives all user-facing console output.
	Out io.Writer

	// BaseDir overrides install-directory resolution when non-empty.
	// Left empty in production; Run resolves it from the running
	// executable's own path.
	BaseDir string

	// ShowTips controls whether a tip is drawn and printed.
	ShowTips bool

	// Notices are extra lines printed between the deprecation notice
	// and the tip (e.g. the update-check result).
	Notices []string

	// Handoff performs the final transfer of control.
	Handoff Handoff

	styles Styles
	picker *Picker
	log    *slog.Logger
}

// New creates a Launcher wired for production use: stdout output,
// process-replacing hand-off, tips enabled.
func New() *Launcher {
	return &Launcher{
		Out:      os.Stdout,
		ShowTips: true,
		Handoff:  ProcessHandoff{},
		styles:   DefaultStyles(),
		picker:   NewPicker(),
		log:      logging.WithComponent("launcher"),
	}
}

// Run executes the sequence Resolve -> Clear -> Banner -> Tip -> Exec.
// It returns only on a fatal error (unresolvable install directory, or
// a missing/failed target); on success the process image is replaced
// and the call never returns. Cosmetic steps never fail the run.
func (l *Launcher) Run() error {
	base := l.BaseDir
	if base == "" {
		var err error
		base, err = ResolveBaseDir()
		if err != nil {
			return err
		}
	}
	l.log.Debug("resolved install directory", "dir", base)

	Clear(l.Out)
	fmt.Fprintln(l.Out, Banner(l.styles))

	for _, notice := range l.Notices {
		fmt.Fprintln(l.Out, l.styles.Update.Render(notice))
	}

	if l.ShowTips {
		if tip := l.picker.Pick(); tip != "" {
			fmt.Fprintln(l.Out, l.styles.Tip.Render(tip))
		}
	}

	target := TargetPath(base)
	if err := CheckTarget(target); err != nil {
		return err
	}

	l.log.Debug("handing off", "target", target)
	// argv carries only the target's own name: the launcher's arguments
	// are never forwarded, and the environment passes through untouched.
	if err := l.Handoff.Exec(target, []string{target}, os.Environ()); err != nil {
		return fmt.Errorf("starting %s: %w", target, err)
	}
	return nil
}
