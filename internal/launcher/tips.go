// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package launcher

import "math/rand"

// tipPool is the fixed set of hint lines shown under the banner. Most
// entries are intentionally empty so that roughly two out of three runs
// print no tip at all. Order matters only for the uniform draw; the
// pool is immutable for the process lifetime.
var tipPool = []string{
	"",
	"",
	"Tip: use the up and down arrow keys to walk through your command history.",
	"",
	"",
	"Tip: type `?` in any menu to list the commands available there.",
	"",
	"",
	"Tip: add `--export csv` to any table command to save it next to your routines.",
	"",
	"",
	"Tip: press Ctrl+D at an empty prompt to leave the terminal.",
	"",
}

// Picker draws uniformly from the tip pool.
type Picker struct {
	pool []string
	intn func(n int) int
}

// NewPicker returns a Picker over the fixed pool, backed by the
// runtime's auto-seeded generator. Cryptographic quality is not needed
// here; the seed only has to vary across invocations.
func NewPicker() *Picker {
	return &Picker{pool: tipPool, intn: rand.Intn}
}

// Pick returns one entry chosen uniformly from the pool. An empty
// string is a valid and frequent result, meaning "no tip this run".
func (p *Picker) Pick() string {
	return p.pool[p.intn(len(p.pool))]
}

// PoolSize returns the number of entries in the pool.
func (p *Picker) PoolSize() int {
	return len(p.pool)
}

// EmptyCount returns how many pool entries are empty.
func (p *Picker) EmptyCount() int {
	n := 0
	for _, tip := range p.pool {
		if tip == "" {
			n++
		}
	}
	return n
}
