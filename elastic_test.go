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

func TestWidthInvariant(t *testing.T) {
	w := MinOptMax(1, 2, 4)
	if w.Stretch() != 2 || w.Shrink() != 1 {
		t.Errorf("stretch=%g shrink=%g", w.Stretch(), w.Shrink())
	}

	sum := w.Add(MinOptMax(0, 1, 1))
	if sum != (Width{Min: 1, Opt: 3, Max: 5}) {
		t.Errorf("wrong sum %v", sum)
	}

	scaled := w.Scale(2.5)
	if scaled != (Width{Min: 2.5, Opt: 5, Max: 10}) {
		t.Errorf("wrong scaled value %v", scaled)
	}

	if !W(3).IsFixed() || w.IsFixed() {
		t.Error("IsFixed is wrong")
	}
}

func TestWidthPanics(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}
	mustPanic("min>opt", func() { MinOptMax(3, 2, 4) })
	mustPanic("opt>max", func() { MinOptMax(1, 5, 4) })
	mustPanic("negative scale", func() { W(1).Scale(-1) })
}

func TestSpaceSpec(t *testing.T) {
	var s SpaceSpec
	if s.HasSpaces() {
		t.Error("empty SpaceSpec has spaces")
	}
	s.AddSpace(W(2))
	s.AddSpace(MinOptMax(1, 3, 5))
	if !s.HasSpaces() {
		t.Error("SpaceSpec has no spaces")
	}

	if got := s.Resolve(false); got != (Width{Min: 3, Opt: 5, Max: 7}) {
		t.Errorf("wrong resolved width %v", got)
	}

	if got := s.Resolve(true); got != (Width{}) {
		t.Errorf("end of line should discard spaces, got %v", got)
	}

	s.AddSpace(W(2))
	s.Clear()
	if s.HasSpaces() {
		t.Error("pending spaces remain after Clear")
	}
}
