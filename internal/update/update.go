// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package update checks GitHub for a newer Atlas Terminal release.
// The check is strictly best-effort: every failure is reported as an
// error for logging, and callers must never let it delay or abort the
// launch beyond the request timeout.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// DefaultTimeout bounds the release lookup so a slow network cannot
// hold the launch hostage.
const DefaultTimeout = 3 * time.Second

// defaultReleasesURL is the GitHub "latest release" endpoint for the
// bundled terminal.
const defaultReleasesURL = "https://api.github.com/repos/llbbl/atlas-terminal/releases/latest"

// Status describes how the running build compares to the latest
// published release.
type Status int

const (
	// StatusUnknown means the comparison could not be made (dev build,
	// unparseable tag).
	StatusUnknown Status = iota
	// StatusLatest means the running build matches the latest release.
	StatusLatest
	// StatusOutdated means a newer release has been published.
	StatusOutdated
	// StatusAhead means the running build is newer than any release.
	StatusAhead
)

// Result carries the outcome of a release check.
type Result struct {
	Status Status
	Latest string // latest published tag, e.g. "v3.2.0"
}

// Checker queries the releases endpoint and compares versions.
type Checker struct {
	Client *http.Client
	URL    string
}

// NewChecker creates a Checker against the real GitHub API with the
// default timeout.
func NewChecker() *Checker {
	return &Checker{
		Client: &http.Client{Timeout: DefaultTimeout},
		URL:    defaultReleasesURL,
	}
}

type latestRelease struct {
	TagName string `json:"tag_name"`
}

// Check fetches the latest release tag and compares it to current.
// current and the fetched tag are normalized to a leading "v" before
// the semver comparison.
func (c *Checker) Check(ctx context.Context, current string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("building release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("fetching latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("fetching latest release: unexpected status %d", resp.StatusCode)
	}

	var release latestRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Result{}, fmt.Errorf("parsing release response: %w", err)
	}

	latest := canonical(release.TagName)
	if latest == "" {
		return Result{}, fmt.Errorf("unparseable release tag %q", release.TagName)
	}

	cur := canonical(current)
	if cur == "" {
		// Dev builds carry no comparable version.
		return Result{Status: StatusUnknown, Latest: latest}, nil
	}

	switch semver.Compare(cur, latest) {
	case 0:
		return Result{Status: StatusLatest, Latest: latest}, nil
	case -1:
		return Result{Status: StatusOutdated, Latest: latest}, nil
	default:
		return Result{Status: StatusAhead, Latest: latest}, nil
	}
}

// canonical normalizes a tag to semver form ("v1.2.3"), returning ""
// when the input is not a valid version.
func canonical(tag string) string {
	v := strings.TrimSpace(tag)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}

// Notice renders a one-line human message for a result, or "" when
// nothing useful can be said.
func Notice(r Result) string {
	switch r.Status {
	case StatusOutdated:
		return fmt.Sprintf("A newer release (%s) is available: https://atlas.llbbl.dev/download", r.Latest)
	case StatusLatest:
		return "You are running the latest release."
	case StatusAhead:
		return "You are running an unreleased build."
	default:
		return ""
	}
}
