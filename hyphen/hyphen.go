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

// Package hyphen supplies hyphenation points for textrun, based on
// Liang-style hyphenation patterns.
package hyphen

import (
	"io"

	"github.com/speedata/hyphenation"
	"golang.org/x/text/language"
)

// Lang hyphenates words using the patterns of one language.
type Lang struct {
	lang *hyphenation.Lang
	tag  language.Tag
}

// New reads a hyphenation pattern file, for example one of the TeX
// hyph-utf8 pattern files.
func New(r io.Reader, tag language.Tag) (*Lang, error) {
	l, err := hyphenation.New(r)
	if err != nil {
		return nil, err
	}
	return &Lang{lang: l, tag: tag}, nil
}

// Tag returns the language the patterns are for.
func (l *Lang) Tag() language.Tag {
	return l.tag
}

// Points returns the hyphenation points of word as a replayable
// context for textrun.
func (l *Lang) Points(word string) *Context {
	return NewContext(l.lang.Hyphenate(word)...)
}

// Context replays the hyphenation points of one word as successive
// offsets, the form the textrun.PointSource interface expects.
type Context struct {
	points []int // ascending rune offsets into the word
	offset int   // characters already consumed
	next   int   // index of the next unconsumed point
}

// NewContext creates a context from ascending rune offsets.
func NewContext(points ...int) *Context {
	return &Context{points: points}
}

// HasMore reports whether any hyphenation points remain.
func (c *Context) HasMore() bool {
	return c.next < len(c.points)
}

// NextOffset returns the number of characters from the current
// position to the next hyphenation point, or 0 if none remain.
func (c *Context) NextOffset() int {
	if c.next >= len(c.points) {
		return 0
	}
	return c.points[c.next] - c.offset
}

// Advance moves the current position forward by n characters,
// consuming any hyphenation points passed over.
func (c *Context) Advance(n int) {
	c.offset += n
	for c.next < len(c.points) && c.points[c.next] <= c.offset {
		c.next++
	}
}

// Patterns holds pattern sets for several languages and picks the best
// match for a requested language tag.
type Patterns struct {
	tags  []language.Tag
	langs []*Lang
}

// Add registers a pattern set.
func (p *Patterns) Add(l *Lang) {
	p.tags = append(p.tags, l.tag)
	p.langs = append(p.langs, l)
}

// Lookup returns the best matching pattern set for tag, or nil if no
// patterns are registered.
func (p *Patterns) Lookup(tag language.Tag) *Lang {
	if len(p.tags) == 0 {
		return nil
	}
	m := language.NewMatcher(p.tags)
	_, i, _ := m.Match(tag)
	return p.langs[i]
}
