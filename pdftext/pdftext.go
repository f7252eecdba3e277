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

// Package pdftext connects textrun to PDF fonts: it measures glyphs
// through a pdf font.Layouter and draws materialized fragments onto a
// PDF page.
package pdftext

import (
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/textrun"
)

// Metrics adapts an embedded PDF font to the textrun.Metrics
// interface.
type Metrics struct {
	Font     font.Layouter
	Name     string
	FontSize float64
}

// GlyphWidth returns the advance width of the glyphs r is typeset
// with.
func (m *Metrics) GlyphWidth(r rune) float64 {
	seq := m.Font.Layout(nil, m.FontSize, string(r))
	w := 0.0
	for _, g := range seq.Seq {
		w += g.Advance
	}
	return w
}

func (m *Metrics) Ascent() float64 {
	geom := m.Font.GetGeometry()
	return geom.Ascent * m.FontSize
}

func (m *Metrics) Descent() float64 {
	geom := m.Font.GetGeometry()
	return geom.Descent * m.FontSize
}

func (m *Metrics) FontName() string {
	return m.Name
}

func (m *Metrics) Size() float64 {
	return m.FontSize
}

// Draw renders a materialized fragment with its baseline at the given
// position.  The fragment's word- and letter-space adjustments are
// applied to the glyph advances the way a PDF renderer applies Tc and
// Tw: the letter-space adjustment to every glyph, the word-space
// adjustment to the space glyph only.
func Draw(page *graphics.Writer, F font.Layouter, frag *textrun.Fragment, xPos, yPos float64) {
	var spaceGID glyph.ID
	if seq := F.Layout(nil, frag.FontSize, " "); len(seq.Seq) == 1 {
		spaceGID = seq.Seq[0].GID
	}

	seq := F.Layout(nil, frag.FontSize, frag.Text)
	for i := range seq.Seq {
		g := &seq.Seq[i]
		g.Advance += frag.LetterSpaceAdjust
		if spaceGID != 0 && g.GID == spaceGID {
			g.Advance += frag.WordSpaceAdjust
		}
	}

	page.TextBegin()
	page.TextSetFont(F, frag.FontSize)
	page.TextFirstLine(xPos, yPos)
	page.TextShowGlyphs(seq)
	page.TextEnd()
}
