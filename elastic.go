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

import "fmt"

// Width is an elastic dimension.  It can shrink down to Min, prefers
// Opt, and can stretch up to Max.  All text, space and hyphen widths
// in this package are of this type.
type Width struct {
	Min, Opt, Max float64
}

// W returns a fixed width with no stretch or shrink.
func W(val float64) Width {
	return Width{Min: val, Opt: val, Max: val}
}

// MinOptMax returns an elastic width.  The arguments must satisfy
// min <= opt <= max; the function panics otherwise.
func MinOptMax(min, opt, max float64) Width {
	if min > opt || opt > max {
		panic(fmt.Sprintf("textrun: invalid elastic width [%g, %g, %g]", min, opt, max))
	}
	return Width{Min: min, Opt: opt, Max: max}
}

// Add returns the component-wise sum of w and other.
func (w Width) Add(other Width) Width {
	return Width{
		Min: w.Min + other.Min,
		Opt: w.Opt + other.Opt,
		Max: w.Max + other.Max,
	}
}

// Scale returns w multiplied by the non-negative factor q.
func (w Width) Scale(q float64) Width {
	if q < 0 {
		panic("textrun: negative scale factor")
	}
	return Width{Min: q * w.Min, Opt: q * w.Opt, Max: q * w.Max}
}

// IsFixed reports whether w has no room to stretch or shrink.
func (w Width) IsFixed() bool {
	return w.Min == w.Max
}

// Stretch returns the amount by which w can grow beyond Opt.
func (w Width) Stretch() float64 {
	return w.Max - w.Opt
}

// Shrink returns the amount by which w can fall short of Opt.
func (w Width) Shrink() float64 {
	return w.Opt - w.Min
}

// SpaceSpec accumulates space which is pending until the surrounding
// content decides whether it is kept.  Adjacent inline runs each
// contribute half of their word-spacing here, so that a trailing and a
// leading half-space combine into a single inter-word space.
type SpaceSpec struct {
	pending []Width
}

// AddSpace appends a pending space.
func (s *SpaceSpec) AddSpace(w Width) {
	s.pending = append(s.pending, w)
}

// HasSpaces reports whether any space is pending.
func (s *SpaceSpec) HasSpaces() bool {
	return len(s.pending) > 0
}

// Resolve collapses the pending spaces into a concrete width.  At the
// end of a line the pending spaces are suppressed and the zero width is
// returned.
func (s *SpaceSpec) Resolve(endOfLine bool) Width {
	if endOfLine {
		return Width{}
	}
	var total Width
	for _, w := range s.pending {
		total = total.Add(w)
	}
	return total
}

// Clear removes all pending spaces.
func (s *SpaceSpec) Clear() {
	s.pending = s.pending[:0]
}
