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

// Package textrun turns one whitespace-normalized run of characters
// into a sequence of box/glue/penalty elements for a paragraph-level
// line breaker, and materializes chosen break ranges back into
// concrete text fragments.
package textrun

import (
	"errors"
	"strings"
	"unicode"
)

// Metrics provides the glyph measurements of the font the run is set
// in.  Descent is negative (the distance below the baseline).
type Metrics interface {
	GlyphWidth(r rune) float64
	Ascent() float64
	Descent() float64
	FontName() string
	Size() float64
}

// Config holds the per-run spacing values, already resolved from style
// inheritance by the caller.
type Config struct {
	WordSpacing   Width // extra space added to the space glyph between words
	LetterSpacing Width // space between consecutive non-space glyphs
	HyphenChar    rune  // hyphen glyph appended at hyphenation breaks, '-' if zero
	Wrap          bool  // allow line breaks at breakable characters
}

const (
	chNewline = '\n'
	chSpace   = ' '
	chNBSpace = ' ' // no-break space
)

// breakChars are non-space characters on which a line may end, when
// preceded by a letter or a digit.
const breakChars = "-/"

// A Run walks the character buffer of one inline text node.  Letter
// space applies only between consecutive non-space characters, while
// word space applies to space characters; the spaces in the string
// "A SIMPLE TEST" are
//
//	A<ws>S<ls>I<ls>M<ls>P<ls>L<ls>E<ws>T<ls>E<ls>S<ls>T
//
// There is no letter space after the last character of a word, nor
// after a space character.
//
// A Run is not safe for concurrent use.  The generation calls form a
// resumable producer: each call advances the cursor and returns the
// next chunk of output, until the run is finished.
type Run struct {
	text    []rune
	metrics Metrics

	spaceWidth float64 // width of the space glyph
	hyphChar   rune
	hyphWidth  float64 // width of the hyphen glyph

	wordSpace   Width // space glyph width plus the configured word-spacing
	letterSpace Width
	halfWS      Width // half of the word-spacing value
	wrap        bool

	reg     registry
	staged  []pendingChange
	changed bool

	nextStart  int   // cursor: first character not yet consumed
	total      Width // running size in break-possibility mode
	haveTotal  bool
	nextReveal int // first registry entry not yet re-emitted
	finished   bool
}

// New creates a layout manager for the given text.  The character
// buffer and the per-run metrics are fixed for the lifetime of the
// run.
func New(text string, metrics Metrics, cfg Config) *Run {
	hyph := cfg.HyphenChar
	if hyph == 0 {
		hyph = '-'
	}
	spaceWidth := metrics.GlyphWidth(chSpace)
	return &Run{
		text:        []rune(text),
		metrics:     metrics,
		spaceWidth:  spaceWidth,
		hyphChar:    hyph,
		hyphWidth:   metrics.GlyphWidth(hyph),
		wordSpace:   cfg.WordSpacing.Add(W(spaceWidth)),
		letterSpace: cfg.LetterSpacing,
		halfWS:      cfg.WordSpacing.Scale(0.5),
		wrap:        cfg.Wrap,
	}
}

func (r *Run) pos(index int) Position {
	return Position{run: r, index: index}
}

func (r *Run) auxPos() Position {
	return Position{run: r, index: noSegment}
}

// Finished reports whether the whole buffer has been consumed.
func (r *Run) Finished() bool {
	return r.finished
}

// WordSpaceWidth returns the preferred width of one inter-word space.
func (r *Run) WordSpaceWidth() float64 {
	return r.wordSpace.Opt
}

// CanBreakBefore reports whether the character at the cursor is itself
// a legal break start.  A caller uses this when it could not break at
// the end of a preceding inline run.
func (r *Run) CanBreakBefore() bool {
	if r.nextStart >= len(r.text) {
		return false
	}
	c := r.text[r.nextStart]
	return c == chNewline ||
		r.wrap && (isBreakableSpace(c) || r.isBreakChar(r.nextStart))
}

// Reset rewinds the cursor to a previously issued position, discarding
// all progress after it, and clears the finished flag.  A nil position
// rewinds to the beginning of the buffer.
func (r *Run) Reset(pos *Position) error {
	if pos == nil {
		r.reg.clear()
		r.staged = nil
		r.changed = false
		r.nextStart = 0
		r.haveTotal = false
		r.nextReveal = 0
		r.finished = false
		return nil
	}
	if pos.run != r {
		return errForeignPosition
	}
	if pos.index < 0 || pos.index >= r.reg.len() {
		return errInvalidPosition
	}
	seg := r.reg.at(pos.index)
	if seg.Break != r.nextStart {
		r.nextStart = seg.Break
		r.reg.truncate(pos.index + 1)
		r.staged = nil
		r.changed = false
		r.total = seg.Width
		r.haveTotal = true
		if r.nextReveal > pos.index+1 {
			r.nextReveal = pos.index + 1
		}
		r.finished = false
	}
	return nil
}

// WordChars returns the characters covered by the segment at pos.
// This is used when doing hyphenation or other word manipulations.
func (r *Run) WordChars(pos Position) (string, error) {
	if pos.run != r {
		return "", errForeignPosition
	}
	if pos.index == noSegment {
		return "", nil
	}
	if pos.index < 0 || pos.index >= r.reg.len() {
		return "", errInvalidPosition
	}
	seg := r.reg.at(pos.index)
	return string(r.text[seg.Start:seg.Break]), nil
}

// WordCharsBetween returns the characters of the segment named by end,
// with any leading spaces skipped.  The start position only asserts
// ownership; hyphenation drivers call this with the two positions
// delimiting a word.
func (r *Run) WordCharsBetween(start, end Position) (string, error) {
	if start.run != r || end.run != r {
		return "", errForeignPosition
	}
	if end.index < 0 || end.index >= r.reg.len() {
		return "", errInvalidPosition
	}
	seg := r.reg.at(end.index)
	i := seg.Start
	for i < seg.Break && isAnySpace(r.text[i]) {
		i++
	}
	return string(r.text[i:seg.Break]), nil
}

var (
	errForeignPosition = errors.New("textrun: position does not belong to this run")
	errInvalidPosition = errors.New("textrun: position names no registry entry")
)

func (r *Run) isBreakChar(i int) bool {
	if !strings.ContainsRune(breakChars, r.text[i]) {
		return false
	}
	return i == 0 || isLetterOrDigit(r.text[i-1])
}

func isBreakableSpace(c rune) bool {
	return unicode.IsSpace(c) &&
		c != 0x00A0 && // NO-BREAK SPACE
		c != 0x2007 && // FIGURE SPACE
		c != 0x202F // NARROW NO-BREAK SPACE
}

func isAnySpace(c rune) bool {
	return unicode.IsSpace(c) || c == 0x00A0 || c == 0x2007 || c == 0x202F
}

func isLetterOrDigit(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}
