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

// Fragment is one materialized line fragment, ready to be placed into
// an area tree.  Width already includes the full justification
// adjustment.
type Fragment struct {
	Text     string
	Width    float64
	Height   float64
	Offset   float64 // baseline offset from the top edge
	FontName string
	FontSize float64

	// LetterSpaceAdjust is the adjusted letter space per boundary.
	// WordSpaceAdjust is the word-space adjustment relative to the
	// width of the space glyph; see Materialize for the bias applied.
	LetterSpaceAdjust float64
	WordSpaceAdjust   float64
}

// Materialize converts a chosen break range into one concrete text
// fragment.  positions is the ordered sequence of positions the
// optimizer selected for one line (synthetic positions are ignored),
// ratio the line's justification ratio (positive stretches toward the
// elastic maximum, negative or zero shrinks toward the minimum), and
// lastArea reports whether this fragment ends the line, so that a
// hyphen is appended when the range ends in a hyphenation break.
func (r *Run) Materialize(positions []Position, ratio float64, lastArea bool) (*Fragment, error) {
	var last *Segment
	start := -1
	wsCount := 0
	lsCount := 0
	var realWidth Width

	for _, pos := range positions {
		if pos.run != r {
			return nil, errForeignPosition
		}
		if pos.index == noSegment {
			continue
		}
		if pos.index < 0 || pos.index >= r.reg.len() {
			return nil, errInvalidPosition
		}
		seg := r.reg.at(pos.index)
		if start == -1 {
			start = seg.Start
		}
		wsCount += seg.WordSpaces
		lsCount += seg.LetterSpaces
		realWidth = realWidth.Add(seg.Width)
		last = seg
	}
	if last == nil {
		return nil, nil
	}

	// strip a trailing forced-break character
	end := last.Break
	if r.text[end-1] == chNewline {
		end--
	}
	text := string(r.text[start:end])

	// append the hyphen glyph if the last word is hyphenated
	if lastArea && last.Hyphenated {
		text += string(r.hyphChar)
		realWidth = realWidth.Add(W(r.hyphWidth))
	}

	// total difference between real and available width
	var difference float64
	if ratio > 0 {
		difference = (realWidth.Max - realWidth.Opt) * ratio
	} else {
		difference = (realWidth.Opt - realWidth.Min) * ratio
	}

	// letter-space adjustment is consumed first
	letterSpaceDim := r.letterSpace.Opt
	if ratio > 0 {
		letterSpaceDim += (r.letterSpace.Max - r.letterSpace.Opt) * ratio
	} else {
		letterSpaceDim += (r.letterSpace.Opt - r.letterSpace.Min) * ratio
	}
	totalAdjust := (letterSpaceDim - r.letterSpace.Opt) * float64(lsCount)

	// the remaining budget is divided evenly across the word spaces;
	// without word spaces the remainder is absorbed as width slack
	wordSpaceDim := r.wordSpace.Opt
	if wsCount > 0 {
		wordSpaceDim += (difference - totalAdjust) / float64(wsCount)
	}
	totalAdjust += (wordSpaceDim - r.wordSpace.Opt) * float64(wsCount)

	frag := &Fragment{
		Text:              text,
		Width:             realWidth.Opt + totalAdjust,
		Height:            r.metrics.Ascent() - r.metrics.Descent(),
		Offset:            r.metrics.Ascent(),
		FontName:          r.metrics.FontName(),
		FontSize:          r.metrics.Size(),
		LetterSpaceAdjust: letterSpaceDim,
	}

	// wordSpaceDim is relative to the preferred word space, but the
	// renderer needs the adjustment relative to the space glyph in the
	// current font.  The renderer also adds the letter spacing to
	// every glyph, including space characters and the last character
	// of a word; the letter-space adjustment is therefore subtracted
	// twice.  The renderer computes the space width as
	//
	//	space width = glyph width + letterSpaceAdjust + wordSpaceAdjust
	//	            = wordSpaceDim - letterSpaceAdjust
	frag.WordSpaceAdjust = wordSpaceDim - r.spaceWidth - 2*frag.LetterSpaceAdjust
	return frag, nil
}
