package compose

import (
	"strings"

	"github.com/gogpu/shaderpack/directive"
)

// Context is the shared interpreter state for one top-level parse. It is
// threaded by pointer through every nested include, so the composition
// state, registries, and program slot carry across file boundaries.
type Context struct {
	modules *ModuleRegistry
	types   *TypeRegistry
	diags   Diagnostics

	// Composition state: at most one module is open at a time.
	openKind ModuleKind
	openName string
	openFile string
	openLine int
	parts    []string

	program    Program
	programSet bool

	// searchPaths is mutated only for the dynamic extent of one include:
	// the included file's directory is pushed to the front and popped when
	// its parse returns.
	searchPaths []string

	// openFiles holds the canonical paths of the currently open include
	// frames, used to reject cyclic includes.
	openFiles []string

	maxDepth int
}

// NewContext creates a fresh interpreter state with the given ordered
// search-path list. A maxDepth of zero or less selects
// DefaultMaxIncludeDepth.
func NewContext(searchPaths []string, maxDepth int) *Context {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxIncludeDepth
	}
	return &Context{
		modules:     NewModuleRegistry(),
		types:       NewTypeRegistry(),
		searchPaths: append([]string(nil), searchPaths...),
		maxDepth:    maxDepth,
	}
}

// Modules returns the module registry.
func (c *Context) Modules() *ModuleRegistry { return c.modules }

// Types returns the type-mapping registry.
func (c *Context) Types() *TypeRegistry { return c.types }

// Diagnostics returns everything collected so far, in source order.
func (c *Context) Diagnostics() Diagnostics { return c.diags }

// Program returns the composed program, if one was successfully defined.
func (c *Context) Program() (Program, bool) { return c.program, c.programSet }

// ScanSource scans one source buffer through the context. file labels
// diagnostics and need not be a real path.
func (c *Context) ScanSource(file, source string) {
	newScanner(c, file, source).scan()
}

// Finish closes out the root parse. A module still open at this point was
// never terminated by an end directive; its accumulated text is dropped
// with a diagnostic rather than silently.
func (c *Context) Finish() {
	if c.openKind == KindNone {
		return
	}
	c.diags.Addf(DiagState, c.openFile, c.openLine, "%s: module is never ended", c.openName)
	c.openKind = KindNone
	c.openName = ""
	c.parts = nil
}

// apply interprets one classified directive. Errors become diagnostics and
// the scan continues; no directive aborts the parse.
func (c *Context) apply(s *scanner, d directive.Directive) {
	switch d.Kind {
	case directive.Unknown:
		c.diags.Addf(DiagLexical, s.file, s.directiveLine, "%s", d.Err)
	case directive.BadArity:
		c.diags.Addf(DiagSyntax, s.file, s.directiveLine, "%s", d.Err)
	case directive.PassThrough:
		// No interpreter action. The scanner keeps the line's text in the
		// open module's accumulation.
	case directive.End:
		c.endModule(s)
	case directive.Module:
		c.openModule(s, KindGeneric, d.Args[0])
	case directive.Vert:
		c.openModule(s, KindVertex, d.Args[0])
	case directive.Frag:
		c.openModule(s, KindFragment, d.Args[0])
	case directive.Program:
		c.defineProgram(s, d.Args[0], d.Args[1], d.Args[2])
	case directive.Include:
		c.include(s, d.Args[0])
	case directive.IncludeModule:
		c.includeModule(s, d.Args[0])
	case directive.CTypedef:
		c.typedef(s, d.Args[0], d.Args[1])
	}

	if c.openKind != KindNone {
		c.addGapSpan(s)
	}
}

func (c *Context) openModule(s *scanner, kind ModuleKind, name string) {
	if c.openKind != KindNone {
		noun := "module"
		if kind != KindGeneric {
			noun = kind.String() + " module"
		}
		c.diags.Addf(DiagState, s.file, s.directiveLine,
			"%s: new %s started before ending %s", name, noun, c.openName)
		return
	}
	c.openKind = kind
	c.openName = name
	c.openFile = s.file
	c.openLine = s.directiveLine
}

func (c *Context) endModule(s *scanner) {
	if c.openKind == KindNone {
		c.diags.Addf(DiagState, s.file, s.directiveLine, "extraneous end directive")
		return
	}

	c.addGapSpan(s)

	m := &Module{
		Name: c.openName,
		Kind: c.openKind,
		Code: strings.TrimSpace(strings.Join(c.parts, "")),
	}
	if !c.modules.Insert(m) {
		c.diags.Addf(DiagState, s.file, s.directiveLine, "%s: module already defined", m.Name)
	}

	c.openKind = KindNone
	c.openName = ""
	c.parts = nil
}

// defineProgram validates both module references before giving up, so a
// single pass can report problems with both arguments.
func (c *Context) defineProgram(s *scanner, name, vertName, fragName string) {
	if c.programSet {
		c.diags.Addf(DiagState, s.file, s.directiveLine, "%s: program already defined", name)
		return
	}

	vert, vertOK := c.modules.Lookup(vertName)
	frag, fragOK := c.modules.Lookup(fragName)

	failed := false
	if !vertOK {
		c.diags.Addf(DiagState, s.file, s.directiveLine, "%s: vertex module not found", vertName)
		failed = true
	} else if vert.Kind != KindVertex {
		c.diags.Addf(DiagState, s.file, s.directiveLine, "%s: not a vertex module", vertName)
		failed = true
	}
	if !fragOK {
		c.diags.Addf(DiagState, s.file, s.directiveLine, "%s: fragment module not found", fragName)
		failed = true
	} else if frag.Kind != KindFragment {
		c.diags.Addf(DiagState, s.file, s.directiveLine, "%s: not a fragment module", fragName)
		failed = true
	}
	if failed {
		return
	}

	c.program = Program{Name: name, Vertex: vert, Fragment: frag}
	c.programSet = true
}

func (c *Context) includeModule(s *scanner, name string) {
	if c.openKind == KindNone {
		c.diags.Addf(DiagState, s.file, s.directiveLine,
			"%s: include_module used outside any open module", name)
		return
	}
	m, ok := c.modules.Lookup(name)
	if !ok {
		c.diags.Addf(DiagState, s.file, s.directiveLine, "%s: module not found", name)
		return
	}
	c.parts = append(c.parts, m.Code)
}

func (c *Context) typedef(s *scanner, glslType, hostType string) {
	if !c.types.Insert(glslType, hostType) {
		c.diags.Addf(DiagState, s.file, s.directiveLine, "%s: type mapping already defined", glslType)
	}
}

// addGapSpan captures the raw text between the end of the previous directive
// and the start of the current one into the open module. A gap of exactly
// two bytes is the previous directive's terminating newline plus a single
// blank line and is skipped; existing shader sources depend on this
// byte-for-byte.
func (c *Context) addGapSpan(s *scanner) {
	if s.tokenStart-s.lastTokenEnd == 2 {
		return
	}
	c.parts = append(c.parts, s.source[s.lastTokenEnd:s.tokenStart])
}
