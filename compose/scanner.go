package compose

import (
	"github.com/gogpu/shaderpack/directive"
)

// scanner drives a byte-at-a-time scan over one source buffer. One scanner
// exists per open file; nested includes suspend the includer's scanner on
// the call stack until the nested parse returns.
type scanner struct {
	ctx    *Context
	file   string
	source string

	pos  int
	line int

	// Byte offsets of the current and previous directive lines, used by the
	// span-accumulation rule. tokenStart is the offset of the current
	// directive's '#'; tokenEnd and lastTokenEnd are the offsets of the
	// current and previous directives' terminating newlines.
	tokenStart   int
	tokenEnd     int
	lastTokenEnd int

	// directiveLine is the 1-based line of the directive being interpreted.
	directiveLine int
}

func newScanner(ctx *Context, file, source string) *scanner {
	return &scanner{
		ctx:    ctx,
		file:   file,
		source: source,
		line:   1,
	}
}

// scan walks the buffer. Only two byte sequences are ever inspected: the
// comment opener, which fast-forwards to the next newline so a '#' inside a
// comment is not misread as a directive, and the directive marker itself.
// Everything else is body text, captured only in bulk as gap spans.
func (s *scanner) scan() {
	for s.pos < len(s.source) {
		ch := s.source[s.pos]

		if ch == '/' && s.peekNext() == '/' {
			// Comment bytes stay in the source; they remain part of
			// whatever gap span later claims this region.
			for s.pos < len(s.source) && s.source[s.pos] != '\n' {
				s.pos++
			}
			continue
		}

		if ch == '#' {
			s.directive()
		}

		if s.pos < len(s.source) && s.source[s.pos] == '\n' {
			s.line++
		}
		s.pos++
	}
}

// directive captures the rest of the line as statement text and runs the
// split → classify → interpret pipeline on it.
func (s *scanner) directive() {
	s.lastTokenEnd = s.tokenEnd
	s.tokenStart = s.pos
	s.directiveLine = s.line
	s.pos++ // consume '#'

	statement := s.statement()
	words := directive.Split(statement)
	d := directive.Classify(words)
	s.ctx.apply(s, d)
	s.tokenEnd = s.pos

	if d.Kind == directive.PassThrough && s.ctx.openKind != KindNone {
		// GLSL's own preprocessor directives stay verbatim in the module,
		// newline included.
		end := s.tokenEnd
		if end < len(s.source) {
			end++
		}
		s.ctx.parts = append(s.ctx.parts, s.source[s.tokenStart:end])
	}
}

// statement returns the directive line's text after the '#', leaving pos on
// the terminating newline. End of input counts as end of line.
func (s *scanner) statement() string {
	start := s.pos
	for s.pos < len(s.source) && s.source[s.pos] != '\n' {
		s.pos++
	}
	return s.source[start:s.pos]
}

func (s *scanner) peekNext() byte {
	if s.pos+1 >= len(s.source) {
		return 0
	}
	return s.source[s.pos+1]
}
