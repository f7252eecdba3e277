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

import "math"

// Alignment selects the shape of the glue emitted for breakable spaces.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignStart
	AlignEnd
	AlignCenter
	AlignJustify
)

var (
	PenaltyPreventBreak = math.Inf(+1)
	PenaltyForceBreak   = math.Inf(-1)
)

// noSegment marks a position which does not name a registry entry.
const noSegment = -1

// Position names one entry of a run's segment registry.  External
// callers hold positions to identify break candidates; a position is
// only valid for the run that issued it.  Positions at or after the
// first registry index modified by a hyphenation commit become invalid
// and must be re-derived from [Run.ChangedElements].
type Position struct {
	run   *Run
	index int
}

// Index returns the registry index of the position, or -1 for a
// synthetic element that carries no character data.
func (p Position) Index() int {
	return p.index
}

// Synthetic reports whether the position names no registry entry.
func (p Position) Synthetic() bool {
	return p.index == noSegment
}

// An Element is one item of the breakable model of a text run.  There
// are exactly three kinds: *Box, *Glue and *Penalty.  Consumers
// dispatch on the type with an exhaustive type switch.
type Element interface {
	Position() Position
	element()
}

// Box is a run of fixed, unbreakable width.  A line can never be
// broken at a box.
type Box struct {
	Width     float64
	Pos       Position
	Synthetic bool
}

// Glue is elastic space.  A line may be broken at a glue if the glue
// immediately follows a box; its stretch and shrink take part in the
// distribution of the line adjustment.
type Glue struct {
	Width   float64
	Stretch float64
	Shrink  float64

	Pos       Position
	Synthetic bool
}

// Penalty marks a potential break with an associated cost.
// PenaltyPreventBreak forbids a break, PenaltyForceBreak forces one.
// Width is added to the line only if the break is taken here (for
// example the hyphen glyph).  Flagged penalties mark hyphenation
// breaks, so that an optimizer can discourage consecutive hyphenated
// lines.
type Penalty struct {
	Cost    float64
	Width   float64
	Flagged bool

	Pos       Position
	Synthetic bool
}

func (b *Box) Position() Position     { return b.Pos }
func (g *Glue) Position() Position    { return g.Pos }
func (p *Penalty) Position() Position { return p.Pos }

func (*Box) element()     {}
func (*Glue) element()    {}
func (*Penalty) element() {}
