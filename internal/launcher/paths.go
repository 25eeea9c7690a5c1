// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// The bundled terminal lives at a fixed path relative to the launcher's
// own resolved location. This layout is a contract with the packaging
// process, which places both artifacts together.
const (
	// TargetSubdir is the directory holding the bundled terminal build.
	TargetSubdir = "terminal"

	// TargetName is the bundled executable's base file name.
	TargetName = "atlas-terminal"
)

// Fatal error classes. Everything else in the boot sequence is cosmetic.
var (
	// ErrUnresolvableBase indicates the launcher cannot determine its
	// own on-disk location.
	ErrUnresolvableBase = errors.New("cannot resolve launcher location")

	// ErrTargetMissing indicates the bundled terminal executable is not
	// where the packaging contract says it should be.
	ErrTargetMissing = errors.New("bundled terminal not found")

	// ErrTargetNotExecutable indicates the target exists but cannot be run.
	ErrTargetNotExecutable = errors.New("bundled terminal is not executable")
)

// ResolveBaseDir returns the absolute, symlink-free directory containing
// the running launcher executable. The result is independent of the
// working directory and of how the launcher was invoked, including
// through a symbolic link.
func ResolveBaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnresolvableBase, err)
	}
	return resolveDir(exe)
}

// resolveDir absolutizes exePath, dereferences any symlinks along it,
// and returns the containing directory.
func resolveDir(exePath string) (string, error) {
	abs, err := filepath.Abs(exePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnresolvableBase, exePath, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnresolvableBase, abs, err)
	}
	return filepath.Dir(resolved), nil
}

// TargetPath joins the fixed relative subpath onto the resolved base
// directory. The launcher never hardcodes an absolute target path.
func TargetPath(baseDir string) string {
	return filepath.Join(baseDir, TargetSubdir, targetFileName())
}

func targetFileName() string {
	if runtime.GOOS == "windows" {
		return TargetName + ".exe"
	}
	return TargetName
}

// CheckTarget verifies the target exists and is runnable before the
// hand-off is attempted, so a broken install fails with a message
// naming the path instead of a raw exec error.
func CheckTarget(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrTargetMissing, path)
		}
		return fmt.Errorf("%w: %s: %v", ErrTargetMissing, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrTargetNotExecutable, path)
	}
	// Windows has no execute bit; existence of the .exe is enough there.
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o111 == 0 {
		return fmt.Errorf("%w: %s", ErrTargetNotExecutable, path)
	}
	return nil
}
