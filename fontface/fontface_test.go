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

package fontface

import (
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParse(t *testing.T) {
	m, err := Parse(goregular.TTF, "Go-Regular", 12)
	test.Error(t, err)

	test.T(t, m.FontName(), "Go-Regular")
	test.T(t, m.Size(), 12.0)

	space := m.GlyphWidth(' ')
	test.That(t, space > 0, "space glyph has no width")
	wide := m.GlyphWidth('W')
	test.That(t, wide > space, "W narrower than a space")

	test.That(t, m.Ascent() > 0, "ascent not positive")
	test.That(t, m.Descent() < 0, "descent not negative")
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse([]byte("not a font"), "Broken", 10)
	test.That(t, err != nil, "missing error for malformed font data")
}
