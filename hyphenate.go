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

// PointSource supplies successive hyphenation offsets for one word, as
// produced by a pattern-based hyphenator.  NextOffset returns the
// number of characters from the current position to the next
// hyphenation point; Advance moves the current position.
type PointSource interface {
	HasMore() bool
	NextOffset() int
	Advance(n int)
}

// StageHyphenation re-segments the word behind pos into syllables
// using the given hyphenation source.  The finer segmentation is
// staged only: the registry is not modified until [Run.Commit], so an
// optimizer can explore hyphenation hypothetically and discard it if
// the line fits without it.
//
// A staged syllable carries the hyphenated flag unless it is the final
// syllable of the word.  A re-segmentation identical to the existing
// segment is not staged at all.
func (r *Run) StageHyphenation(pos Position, hc PointSource) error {
	if pos.run != r {
		return errForeignPosition
	}
	if pos.index < 0 || pos.index >= r.reg.len() {
		return errInvalidPosition
	}
	seg := r.reg.at(pos.index)

	start := seg.Start
	nothingChanged := true
	for start < seg.Break {
		var stop int
		hyphenFollows := false
		if hc.HasMore() {
			if s := start + hc.NextOffset(); s <= seg.Break {
				// stop is the index of the first character after a
				// hyphenation point
				stop = s
				hyphenFollows = true
			} else {
				// the next hyphenation point is beyond this segment
				stop = seg.Break
			}
		} else {
			stop = seg.Break
		}
		hc.Advance(stop - start)

		var w Width
		for i := start; i < stop; i++ {
			w = w.Add(W(r.metrics.GlyphWidth(r.text[i])))
		}
		// add letter spaces; the last syllable keeps the rule that no
		// letter space follows the final character of a word, interior
		// syllables count all boundaries
		isWordEnd := stop == seg.Break &&
			seg.LetterSpaces < seg.Break-seg.Start
		numLS := stop - start
		if isWordEnd {
			numLS--
		}
		w = w.Add(r.letterSpace.Scale(float64(numLS)))

		if !(nothingChanged && stop == seg.Break && !hyphenFollows) {
			r.staged = append(r.staged, pendingChange{
				seg: Segment{
					Start:        start,
					Break:        stop,
					LetterSpaces: numLS,
					Width:        w,
					Hyphenated:   hyphenFollows,
				},
				slot: pos.index,
			})
			nothingChanged = false
		}
		start = stop
	}
	if !nothingChanged {
		r.changed = true
	}
	return nil
}

// Commit applies all staged changes to the segment registry in one
// batch and rewinds the re-emission cursor to the start of the
// modified region, so that [Run.ChangedElements] regenerates elements
// from there.  It reports whether anything actually changed; with no
// staged changes the call is a no-op returning false.
func (r *Run) Commit() bool {
	if len(r.staged) == 0 {
		r.changed = false
		return false
	}
	first := r.reg.apply(r.staged)
	r.staged = r.staged[:0]
	r.nextReveal = first
	r.finished = false

	changed := r.changed
	r.changed = false
	return changed
}

// ChangedElements re-derives elements for the registry entries from
// the first committed modification to the end of the registry, keyed
// off the stored segments rather than raw characters.  It returns nil
// if the run is already finished and untouched.
func (r *Run) ChangedElements(flaggedPenalty float64, align Alignment) []Element {
	if r.finished {
		return nil
	}

	var list []Element
	for ; r.nextReveal < r.reg.len(); r.nextReveal++ {
		idx := r.nextReveal
		seg := r.reg.at(idx)
		if seg.WordSpaces == 0 {
			// a word or a word fragment
			list = r.appendWordShape(list, idx, seg.Width, seg.LetterSpaces)
			if seg.Hyphenated {
				list = append(list, &Penalty{
					Cost:    flaggedPenalty,
					Width:   r.hyphWidth,
					Flagged: true,
					Pos:     r.auxPos(),
				})
			}
		} else {
			// a word space
			list = r.appendSpaceShape(list, align, idx)
		}
	}
	r.finished = true
	return list
}

// AddLetterSpace widens the segment behind e by one letter space and
// returns the element that replaces e in the caller's sequence.  This
// is used when two inline runs join without an intervening space.
func (r *Run) AddLetterSpace(e Element) Element {
	pos := e.Position()
	if pos.run != r || pos.index == noSegment {
		return e
	}
	seg := r.reg.at(pos.index)
	seg.LetterSpaces++
	seg.Width = seg.Width.Add(r.letterSpace)

	if r.letterSpace.IsFixed() {
		return &Box{Width: seg.Width.Opt, Pos: pos}
	}
	ls := r.letterSpace.Scale(float64(seg.LetterSpaces))
	return &Glue{
		Width:     ls.Opt,
		Stretch:   ls.Stretch(),
		Shrink:    ls.Shrink(),
		Pos:       r.auxPos(),
		Synthetic: true,
	}
}
