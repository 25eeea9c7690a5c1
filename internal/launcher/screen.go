// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package launcher

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Clear erases the display and homes the cursor. It is a no-op when w
// is not attached to a terminal, and any write failure is swallowed: a
// launcher that cannot clear the screen still launches.
func Clear(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok {
		return
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return
	}
	fmt.Fprint(w, "\x1b[2J\x1b[H")
}
