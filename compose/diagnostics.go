package compose

import (
	"fmt"
	"strings"
)

// DiagKind classifies a diagnostic by the layer that produced it.
type DiagKind uint8

const (
	// DiagLexical covers unrecognized directive keywords.
	DiagLexical DiagKind = iota

	// DiagSyntax covers wrong argument counts for recognized keywords.
	DiagSyntax

	// DiagState covers composition-state problems: extraneous end, nested
	// module opens, duplicate names, bad program references.
	DiagState

	// DiagResource covers include resolution problems: no search paths,
	// missing files, cyclic or too-deep includes.
	DiagResource
)

// String returns a short name for the kind.
func (k DiagKind) String() string {
	switch k {
	case DiagLexical:
		return "lexical"
	case DiagSyntax:
		return "syntax"
	case DiagState:
		return "state"
	case DiagResource:
		return "resource"
	}
	return "unknown"
}

// Diagnostic is one problem found during a parse, with its source location.
type Diagnostic struct {
	Kind    DiagKind
	File    string
	Line    int
	Message string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	if d.File == "" {
		return d.Message
	}
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s", d.File, d.Message)
	}
	return fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Message)
}

// Diagnostics is the ordered list of problems collected during one parse.
type Diagnostics []*Diagnostic

// Error implements the error interface.
func (ds Diagnostics) Error() string {
	if len(ds) == 0 {
		return "no diagnostics"
	}
	if len(ds) == 1 {
		return ds[0].Error()
	}
	return fmt.Sprintf("%s (and %d more diagnostics)", ds[0].Error(), len(ds)-1)
}

// FormatAll returns every diagnostic on its own line.
func (ds Diagnostics) FormatAll() string {
	var sb strings.Builder
	for i, d := range ds {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(d.Error())
	}
	return sb.String()
}

// Add appends a diagnostic to the list.
func (ds *Diagnostics) Add(d *Diagnostic) {
	*ds = append(*ds, d)
}

// Addf appends a diagnostic with a formatted message.
func (ds *Diagnostics) Addf(kind DiagKind, file string, line int, format string, args ...any) {
	ds.Add(&Diagnostic{
		Kind:    kind,
		File:    file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// Len returns the number of diagnostics.
func (ds Diagnostics) Len() int {
	return len(ds)
}

// HasErrors returns true if any diagnostics were collected.
func (ds Diagnostics) HasErrors() bool {
	return len(ds) > 0
}
