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

// Context carries the flags the caller's line-layout state provides to
// the generation calls.
type Context struct {
	StartArea            bool // first call in a new line area
	SuppressLeadingSpace bool // drop breakable spaces at the cursor before measuring
	Hyphenate            bool // consult the hyphenation source instead of scanning
	HyphSource           PointSource

	// LeadingSpace is space carried over from enclosing inline areas.
	// A leading half word-space combines with it instead of being
	// counted in this run's width.
	LeadingSpace *SpaceSpec
}

// BreakFlags describe one break possibility.
type BreakFlags uint16

const (
	BreakIsFirst       BreakFlags = 1 << iota // first possibility in a new line area
	BreakIsLast                               // buffer exhausted with this possibility
	BreakCanBreakAfter                        // a legal break point was found
	BreakForced                               // the break is a forced line break
	BreakHyphenated                           // the break is a hyphenation point
	BreakAllSuppress                          // every character seen is suppressible at a line break
	BreakRestSuppress                         // all remaining characters are suppressible at line end
)

// BreakPossibility is the result of one break-possibility-mode call: a
// single candidate break point together with the total elastic width
// accumulated since the line started.
type BreakPossibility struct {
	Width Width // stacking size up to and including this possibility
	Pos   Position
	Flags BreakFlags

	LeadingSpace  *SpaceSpec
	TrailingSpace *SpaceSpec
}

// NextBreak advances the cursor past exactly one candidate breakable
// span and returns it, for callers that do local (non-global) line
// breaking.  It returns nil and marks the run finished when no buffer
// remains.
func (r *Run) NextBreak(ctx *Context) *BreakPossibility {
	if r.nextStart >= len(r.text) {
		r.finished = true
		return nil
	}
	if ctx == nil {
		ctx = &Context{}
	}

	var flags BreakFlags
	if ctx.StartArea {
		// first call on this run, or first call in a new line area
		r.total = Width{}
		r.haveTotal = true
		flags |= BreakIsFirst
	}

	// Suppress leading spaces at a line or area start; they are
	// skipped entirely, without being measured.
	if ctx.SuppressLeadingSpace {
		for r.nextStart < len(r.text) && r.text[r.nextStart] == chSpace {
			r.nextStart++
		}
		if r.nextStart >= len(r.text) {
			r.finished = true
			return nil
		}
	}

	// Leading space which is counted in this area's width.  A space at
	// the very start of a new area contributes only half of the
	// word-spacing, so that it combines with the trailing half-space
	// of the preceding inline run.
	var pending SpaceSpec
	thisStart := r.nextStart
	var spaceW Width // extra width from word-spacing
	wordW := 0.0     // sum of glyph widths, including leading space glyphs
	sawNonSuppressible := false

	for ; r.nextStart < len(r.text); r.nextStart++ {
		c := r.text[r.nextStart]
		if !isAnySpace(c) {
			break
		}
		if c == chSpace || c == chNBSpace {
			if r.nextStart == thisStart && flags&BreakIsFirst != 0 {
				if ctx.LeadingSpace != nil && ctx.LeadingSpace.HasSpaces() {
					ctx.LeadingSpace.AddSpace(r.halfWS)
				} else {
					// does not combine with any leading space
					// from enclosing areas
					spaceW = spaceW.Add(r.halfWS)
				}
			} else {
				pending.AddSpace(r.halfWS)
				spaceW = spaceW.Add(pending.Resolve(false))
			}
			wordW += r.spaceWidth
			pending.Clear()
			pending.AddSpace(r.halfWS)
			if c == chNBSpace {
				sawNonSuppressible = true
			}
		} else {
			// fixed-width space, not a word-space
			sawNonSuppressible = true
			spaceW = spaceW.Add(pending.Resolve(false))
			pending.Clear()
			wordW += r.metrics.GlyphWidth(c)
		}
	}

	if r.nextStart >= len(r.text) {
		// the run ended with spaces
		if !sawNonSuppressible {
			flags |= BreakAllSuppress
		}
		return r.makeBreak(spaceW, wordW, flags, ctx.LeadingSpace, &pending)
	}
	spaceW = spaceW.Add(pending.Resolve(false))

	if ctx.Hyphenate {
		// measure up to the next hyphenation point instead of
		// scanning for a breakable character
		w, ok := r.hyphenWidth(ctx.HyphSource)
		if ok {
			flags |= BreakCanBreakAfter | BreakHyphenated
		}
		wordW += w
	} else {
		// look for a legal line break: breakable white space, a
		// forced break, or a break character preceded by a letter or
		// digit
		for ; r.nextStart < len(r.text); r.nextStart++ {
			c := r.text[r.nextStart]
			if c == chNewline ||
				r.wrap && (isBreakableSpace(c) || r.isBreakChar(r.nextStart)) {
				flags |= BreakCanBreakAfter
				if c != chSpace {
					r.nextStart++
					if c != chNewline {
						wordW += r.metrics.GlyphWidth(c)
					} else {
						flags |= BreakForced
					}
				}
				// if all remaining characters would be suppressed
				// at line end, tell the caller
				last := r.nextStart
				for last < len(r.text) && r.text[last] == chSpace {
					last++
				}
				if last == len(r.text) {
					flags |= BreakRestSuppress
				}
				return r.makeBreak(spaceW, wordW, flags, ctx.LeadingSpace, nil)
			}
			wordW += r.metrics.GlyphWidth(c)
		}
	}
	return r.makeBreak(spaceW, wordW, flags, ctx.LeadingSpace, nil)
}

// hyphenWidth advances the cursor to the next hyphenation point and
// returns the glyph width consumed.  ok is false when the source's
// next point lies beyond the buffer end, meaning no further
// hyphenation is possible; the stop index is then clamped to the
// buffer.
func (r *Run) hyphenWidth(hc PointSource) (float64, bool) {
	ok := true
	stop := len(r.text)
	if hc.HasMore() {
		stop = r.nextStart + hc.NextOffset()
	} else {
		ok = false
	}
	if stop > len(r.text) {
		stop = len(r.text)
		ok = false
	}
	hc.Advance(stop - r.nextStart)

	w := 0.0
	for ; r.nextStart < stop; r.nextStart++ {
		w += r.metrics.GlyphWidth(r.text[r.nextStart])
	}
	return w, ok
}

func (r *Run) makeBreak(spaceW Width, wordW float64, flags BreakFlags, leading, trailing *SpaceSpec) *BreakPossibility {
	total := W(wordW).Add(spaceW)
	if r.haveTotal {
		total = total.Add(r.total)
	}
	// the break possibility stores the total size up to here
	r.total = total
	r.haveTotal = true

	stacking := total
	if flags&BreakHyphenated != 0 {
		// add the hyphen size, but keep it out of the running total:
		// it would be double counted with later hyphenation points
		stacking = total.Add(W(r.hyphWidth))
	}

	if r.nextStart >= len(r.text) {
		flags |= BreakIsLast
		r.finished = true
	}

	bp := &BreakPossibility{
		Width: stacking,
		Pos:   r.pos(r.reg.len() - 1),
		Flags: flags,
	}
	if leading != nil {
		bp.LeadingSpace = leading
	} else {
		bp.LeadingSpace = &SpaceSpec{}
	}
	if trailing != nil {
		bp.TrailingSpace = trailing
	} else {
		bp.TrailingSpace = &SpaceSpec{}
	}
	return bp
}
