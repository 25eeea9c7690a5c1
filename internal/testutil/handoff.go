// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package testutil provides testing utilities for the atlas launcher.
package testutil

import "sync"

// HandoffCall records one attempted transfer of control.
type HandoffCall struct {
	Path string
	Argv []string
	Env  []string
}

// RecordingHandoff implements launcher.Handoff for testing. It records
// every call for verification and returns a configurable error instead
// of replacing the process.
type RecordingHandoff struct {
	mu    sync.Mutex
	Err   error // returned by Exec; nil simulates a successful start
	Calls []HandoffCall
}

// Exec records the call and returns the configured error.
func (h *RecordingHandoff) Exec(path string, argv []string, env []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Calls = append(h.Calls, HandoffCall{Path: path, Argv: argv, Env: env})
	return h.Err
}

// CallCount returns the number of hand-offs attempted.
func (h *RecordingHandoff) CallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.Calls)
}

// LastCall returns the most recent call, or false if none were made.
func (h *RecordingHandoff) LastCall() (HandoffCall, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.Calls) == 0 {
		return HandoffCall{}, false
	}
	return h.Calls[len(h.Calls)-1], true
}
