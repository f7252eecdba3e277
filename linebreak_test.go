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

import "testing"

// testPoints is a hyphenation source backed by a fixed list of
// absolute hyphenation points.
type testPoints struct {
	points []int
	at     int
}

func (p *testPoints) HasMore() bool {
	return len(p.points) > 0
}

func (p *testPoints) NextOffset() int {
	if len(p.points) == 0 {
		return 0
	}
	return p.points[0] - p.at
}

func (p *testPoints) Advance(n int) {
	p.at += n
	for len(p.points) > 0 && p.points[0] <= p.at {
		p.points = p.points[1:]
	}
}

func TestNextBreakHalfSpace(t *testing.T) {
	m := &testMetrics{
		def:    1,
		widths: map[rune]float64{'A': 5, 'B': 7, ' ': 2},
	}
	r := New("A B", m, Config{WordSpacing: W(2), Wrap: true})

	bp := r.NextBreak(&Context{StartArea: true})
	if bp == nil {
		t.Fatal("no break possibility")
	}
	if bp.Width != W(5) {
		t.Errorf("got width %v, want %v", bp.Width, W(5))
	}
	want := BreakIsFirst | BreakCanBreakAfter
	if bp.Flags != want {
		t.Errorf("got flags %b, want %b", bp.Flags, want)
	}

	bp = r.NextBreak(&Context{})
	if bp == nil {
		t.Fatal("no break possibility")
	}
	// A + space glyph + word-spacing + B = 5 + 2 + 2 + 7.  The
	// word-spacing around the space glyph is carried as two half
	// spaces.
	if bp.Width != W(16) {
		t.Errorf("got width %v, want %v", bp.Width, W(16))
	}
	if bp.Flags != BreakIsLast {
		t.Errorf("got flags %b, want %b", bp.Flags, BreakIsLast)
	}
	if !r.Finished() {
		t.Error("run not finished")
	}
	if r.NextBreak(&Context{}) != nil {
		t.Error("finished run returned a break possibility")
	}
}

func TestNextBreakLeadingSpaceCombines(t *testing.T) {
	m := &testMetrics{def: 5, widths: map[rune]float64{' ': 2}}
	r := New(" x", m, Config{WordSpacing: W(2), Wrap: true})

	// a leading space at an area start combines with pending space
	// from the enclosing area instead of adding its own half space
	leading := &SpaceSpec{}
	leading.AddSpace(W(1))
	bp := r.NextBreak(&Context{StartArea: true, LeadingSpace: leading})
	if bp == nil {
		t.Fatal("no break possibility")
	}
	// space glyph + trailing half word-spacing + x; the leading half
	// went into the enclosing space
	if bp.Width != W(8) {
		t.Errorf("got width %v, want %v", bp.Width, W(8))
	}
	if got := leading.Resolve(false); got != W(2) {
		t.Errorf("leading space resolves to %v, want %v", got, W(2))
	}
}

func TestNextBreakTrailingSpaces(t *testing.T) {
	m := &testMetrics{def: 5, widths: map[rune]float64{' ': 2}}
	r := New("ab   ", m, Config{Wrap: true})

	bp := r.NextBreak(&Context{StartArea: true})
	if bp.Flags&BreakRestSuppress == 0 {
		t.Error("missing rest-suppress flag before trailing spaces")
	}

	bp = r.NextBreak(&Context{})
	if bp.Flags&BreakAllSuppress == 0 {
		t.Error("missing all-suppress flag")
	}
	if bp.Flags&BreakIsLast == 0 {
		t.Error("missing is-last flag")
	}
	if bp.TrailingSpace == nil || !bp.TrailingSpace.HasSpaces() {
		t.Error("missing trailing pending space")
	}
	if bp.Width != W(16) { // ab + three space glyphs
		t.Errorf("got width %v, want %v", bp.Width, W(16))
	}
}

func TestNextBreakForced(t *testing.T) {
	m := &testMetrics{def: 5}
	r := New("ab\ncd", m, Config{})

	bp := r.NextBreak(&Context{StartArea: true})
	want := BreakIsFirst | BreakCanBreakAfter | BreakForced
	if bp.Flags != want {
		t.Errorf("got flags %b, want %b", bp.Flags, want)
	}
	if bp.Width != W(10) { // the newline has no width
		t.Errorf("got width %v, want %v", bp.Width, W(10))
	}

	bp = r.NextBreak(&Context{})
	if bp.Width != W(20) || bp.Flags != BreakIsLast {
		t.Errorf("got %v / %b", bp.Width, bp.Flags)
	}
}

func TestNextBreakAtBreakChar(t *testing.T) {
	m := &testMetrics{def: 5, widths: map[rune]float64{'-': 3}}
	r := New("ab-cd", m, Config{Wrap: true})

	bp := r.NextBreak(&Context{StartArea: true})
	if bp.Flags&BreakCanBreakAfter == 0 {
		t.Error("missing can-break-after flag")
	}
	// the break character itself is part of the line
	if bp.Width != W(13) {
		t.Errorf("got width %v, want %v", bp.Width, W(13))
	}

	bp = r.NextBreak(&Context{})
	if bp.Width != W(23) {
		t.Errorf("got width %v, want %v", bp.Width, W(23))
	}
}

func TestNextBreakSuppressLeading(t *testing.T) {
	m := &testMetrics{def: 5, widths: map[rune]float64{' ': 2}}
	r := New("   ab", m, Config{Wrap: true})

	bp := r.NextBreak(&Context{StartArea: true, SuppressLeadingSpace: true})
	if bp.Width != W(10) {
		t.Errorf("got width %v, want %v", bp.Width, W(10))
	}

	r = New("   ", m, Config{Wrap: true})
	if bp := r.NextBreak(&Context{SuppressLeadingSpace: true}); bp != nil {
		t.Errorf("got %v, want nil", bp)
	}
	if !r.Finished() {
		t.Error("run not finished")
	}
}

func TestNextBreakHyphenate(t *testing.T) {
	m := &testMetrics{def: 1, widths: map[rune]float64{'-': 1}}
	src := &testPoints{points: []int{2, 20}}
	r := New("hyphenation", m, Config{})
	ctx := &Context{StartArea: true, Hyphenate: true, HyphSource: src}

	bp := r.NextBreak(ctx)
	if bp.Flags&BreakHyphenated == 0 {
		t.Error("missing hyphenated flag")
	}
	// two characters plus the hyphen glyph
	if bp.Width != W(3) {
		t.Errorf("got width %v, want %v", bp.Width, W(3))
	}

	// the second point lies beyond the buffer: the syllable is
	// clamped and no hyphenation is reported
	ctx.StartArea = false
	bp = r.NextBreak(ctx)
	if bp.Flags&BreakHyphenated != 0 {
		t.Error("hyphenated flag set beyond the buffer end")
	}
	if bp.Flags&BreakIsLast == 0 {
		t.Error("missing is-last flag")
	}
	// the running total does not include the hyphen glyph of the
	// first possibility
	if bp.Width != W(11) {
		t.Errorf("got width %v, want %v", bp.Width, W(11))
	}
}
