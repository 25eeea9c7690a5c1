// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package launcher

// All user-facing literal text lives in this file so the packaging
// process can substitute the canonical strings without touching logic.

const asciiBanner = `
     _  _____  _      _    ____
    / \|_   _|| |    / \  / ___|
   / _ \ | |  | |   / _ \ \___ \
  / ___ \| |  | |__/ ___ \ ___) |
 /_/   \_\_|  |____/_/   \_\____/

         A t l a s   T e r m i n a l`

const deprecationNotice = `Atlas Terminal is deprecated and no longer receives new features.

Development has moved to the Atlas CLI, which covers the same workflows
with a faster data layer and first-class scripting support. Install it
from https://atlas.llbbl.dev/cli and bring your routines with you.

This bundled build keeps working as-is. Bug fixes only.`

// Banner returns the full styled banner block: ASCII art followed by
// the deprecation notice. The content is constant across runs.
func Banner(s Styles) string {
	return s.Banner.Render(asciiBanner) + "\n\n" + s.Notice.Render(deprecationNotice)
}
