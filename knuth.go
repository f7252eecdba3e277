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

// Elements consumes the buffer from the cursor to the end and returns
// the box/glue/penalty model of the remaining text, appending one
// registry segment per classified span.  The call stops early only at
// a forced line break, returning the partial sequence; the next call
// resumes after the break.  Once the buffer is exhausted the run is
// marked finished and subsequent calls return nil.
func (r *Run) Elements(ctx *Context, align Alignment) []Element {
	if r.finished {
		return nil
	}

	if ctx != nil && ctx.SuppressLeadingSpace {
		for r.nextStart < len(r.text) && r.text[r.nextStart] == chSpace {
			r.nextStart++
		}
		if r.nextStart >= len(r.text) {
			r.finished = true
			return nil
		}
	}

	var list []Element
	for r.nextStart < len(r.text) {
		switch c := r.text[r.nextStart]; c {
		case chSpace:
			// normal, breaking space
			idx := r.reg.add(Segment{
				Start:      r.nextStart,
				Break:      r.nextStart + 1,
				WordSpaces: 1,
				Width:      r.wordSpace,
			})
			list = r.appendSpaceShape(list, align, idx)
			r.nextStart++

		case chNBSpace:
			// non-breaking space: measured, but never a break point
			idx := r.reg.add(Segment{
				Start:      r.nextStart,
				Break:      r.nextStart + 1,
				WordSpaces: 1,
				Width:      r.wordSpace,
			})
			list = append(list,
				&Penalty{Cost: PenaltyPreventBreak, Pos: r.pos(idx)},
				&Glue{
					Width:   r.wordSpace.Opt,
					Stretch: r.wordSpace.Stretch(),
					Shrink:  r.wordSpace.Shrink(),
					Pos:     r.pos(idx),
				})
			r.nextStart++

		case chNewline:
			// forced break: nothing further from this call
			list = append(list, &Penalty{Cost: PenaltyForceBreak, Pos: r.auxPos()})
			r.nextStart++
			return list

		default:
			// the beginning of a word
			start := r.nextStart
			end := start
			var word Width
			for end < len(r.text) &&
				r.text[end] != chSpace &&
				r.text[end] != chNBSpace &&
				r.text[end] != chNewline {
				word = word.Add(W(r.metrics.GlyphWidth(r.text[end])))
				end++
			}
			numLS := end - start - 1
			word = word.Add(r.letterSpace.Scale(float64(numLS)))
			idx := r.reg.add(Segment{
				Start:        start,
				Break:        end,
				LetterSpaces: numLS,
				Width:        word,
			})
			list = r.appendWordShape(list, idx, word, numLS)
			r.nextStart = end
		}
	}

	r.finished = true
	if len(list) == 0 {
		return nil
	}
	return list
}

// appendSpaceShape emits the alignment-dependent elements for one
// breakable space.  The multiples of the word-space optimum below are
// tuned values; they suppress and restore space at alignment edges and
// must not be re-derived.
func (r *Run) appendSpaceShape(list []Element, align Alignment, idx int) []Element {
	ws := r.wordSpace.Opt
	switch align {
	case AlignCenter:
		return append(list,
			&Glue{Stretch: 3 * ws, Pos: r.pos(idx)},
			&Penalty{Pos: r.auxPos(), Synthetic: true},
			&Glue{Width: ws, Stretch: -6 * ws, Pos: r.auxPos(), Synthetic: true},
			&Box{Pos: r.auxPos(), Synthetic: true},
			&Penalty{Cost: PenaltyPreventBreak, Pos: r.auxPos(), Synthetic: true},
			&Glue{Stretch: 3 * ws, Pos: r.auxPos(), Synthetic: true})

	case AlignStart, AlignEnd:
		return append(list,
			&Glue{Stretch: 3 * ws, Pos: r.pos(idx)},
			&Penalty{Pos: r.auxPos(), Synthetic: true},
			&Glue{Width: ws, Stretch: -3 * ws, Pos: r.auxPos(), Synthetic: true})

	case AlignJustify:
		return append(list, &Glue{
			Width:   ws,
			Stretch: r.wordSpace.Stretch(),
			Shrink:  r.wordSpace.Shrink(),
			Pos:     r.pos(idx),
		})

	default:
		return append(list, &Glue{
			Width:   ws,
			Stretch: r.wordSpace.Stretch(),
			Pos:     r.pos(idx),
		})
	}
}

// appendWordShape emits the elements for a word segment.  With fixed
// letter-spacing the word is a single box.  Elastic letter-spacing is
// isolated into a penalty-protected glue, so that the optimizer can
// use the stretch without gaining a legal break point.
func (r *Run) appendWordShape(list []Element, idx int, word Width, numLS int) []Element {
	if r.letterSpace.IsFixed() {
		return append(list, &Box{Width: word.Opt, Pos: r.pos(idx)})
	}
	ls := r.letterSpace.Scale(float64(numLS))
	return append(list,
		&Box{Width: word.Opt - ls.Opt, Pos: r.pos(idx)},
		&Penalty{Cost: PenaltyPreventBreak, Pos: r.auxPos(), Synthetic: true},
		&Glue{
			Width:     ls.Opt,
			Stretch:   ls.Stretch(),
			Shrink:    ls.Shrink(),
			Pos:       r.auxPos(),
			Synthetic: true,
		},
		&Box{Pos: r.auxPos(), Synthetic: true})
}
