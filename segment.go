// seehuhn.de/go/textrun - text segmentation for a layout engine
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package textrun

// Segment is one classified, measured run of the character buffer.
// Start and Break delimit the half-open rune range [Start, Break).
// Width includes any word-space and letter-space already folded in.
type Segment struct {
	Start, Break int
	WordSpaces   int
	LetterSpaces int
	Width        Width
	Hyphenated   bool
}

// registry stores segments in an append-only arena.  Positions held by
// callers index the slot table; a hyphenation commit remaps slots in
// one batch but never moves arena entries, so no index-shift can
// corrupt entries before the patched region.
type registry struct {
	arena []Segment
	slots []int
}

func (g *registry) len() int {
	return len(g.slots)
}

func (g *registry) at(i int) *Segment {
	return &g.arena[g.slots[i]]
}

func (g *registry) add(seg Segment) int {
	g.arena = append(g.arena, seg)
	g.slots = append(g.slots, len(g.arena)-1)
	return len(g.slots) - 1
}

func (g *registry) truncate(n int) {
	if n < len(g.slots) {
		g.slots = g.slots[:n]
	}
}

func (g *registry) clear() {
	g.arena = g.arena[:0]
	g.slots = g.slots[:0]
}

// pendingChange is a staged replacement for the registry entry at slot.
// Several changes with the same slot replace that entry with several
// new ones, in order.
type pendingChange struct {
	seg  Segment
	slot int
}

// apply splices the staged changes into the slot table as one batch.
// The changes must be ordered by slot.  It returns the first modified
// slot index, or -1 if there was nothing to apply.
func (g *registry) apply(changes []pendingChange) int {
	if len(changes) == 0 {
		return -1
	}
	first := changes[0].slot
	newSlots := make([]int, 0, len(g.slots)+len(changes))
	newSlots = append(newSlots, g.slots[:first]...)
	i := 0
	for slot := first; slot < len(g.slots); slot++ {
		if i < len(changes) && changes[i].slot == slot {
			for i < len(changes) && changes[i].slot == slot {
				g.arena = append(g.arena, changes[i].seg)
				newSlots = append(newSlots, len(g.arena)-1)
				i++
			}
		} else {
			newSlots = append(newSlots, g.slots[slot])
		}
	}
	g.slots = newSlots
	return first
}
