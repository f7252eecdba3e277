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

// Package fontface provides textrun metrics backed by a font.Face
// from golang.org/x/image.
package fontface

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics adapts a font.Face to the textrun.Metrics interface.
type Metrics struct {
	face font.Face
	name string
	size float64
}

// New wraps an existing face.
func New(face font.Face, name string, size float64) *Metrics {
	return &Metrics{face: face, name: name, size: size}
}

// Parse builds metrics from raw OpenType font data at the given point
// size.
func Parse(data []byte, name string, size float64) (*Metrics, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return parseFont(f, name, size)
}

func parseFont(f *sfnt.Font, name string, size float64) (*Metrics, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return New(face, name, size), nil
}

// GlyphWidth returns the advance width of the glyph for r, or 0 if the
// face has no glyph for r.
func (m *Metrics) GlyphWidth(r rune) float64 {
	adv, ok := m.face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return fromFixed(adv)
}

// Ascent returns the distance from the baseline to the top of a line.
func (m *Metrics) Ascent() float64 {
	return fromFixed(m.face.Metrics().Ascent)
}

// Descent returns the distance from the baseline to the bottom of a
// line, as a negative number.
func (m *Metrics) Descent() float64 {
	return -fromFixed(m.face.Metrics().Descent)
}

func (m *Metrics) FontName() string {
	return m.name
}

func (m *Metrics) Size() float64 {
	return m.size
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
