package directive

import (
	"fmt"
	"strings"
)

// Kind identifies what a directive line means.
type Kind uint8

const (
	// Unknown marks an unrecognized keyword. The Directive's Err field
	// carries the message.
	Unknown Kind = iota

	// BadArity marks a recognized keyword with the wrong argument count.
	BadArity

	// PassThrough marks a standard GLSL preprocessor directive. It is never
	// interpreted; the scanner keeps its text verbatim in module output.
	PassThrough

	End
	Module
	Vert
	Frag
	Program
	Include
	IncludeModule
	CTypedef
)

// MaxArgs is the largest argument count any custom directive accepts.
const MaxArgs = 4

// Directive is the classified form of one directive line. It is transient:
// produced per line, consumed immediately, never retained.
type Directive struct {
	Kind Kind

	// Args holds exactly the declared argument count for Kind; unused slots
	// are empty. The strings alias the words passed to Classify.
	Args [MaxArgs]string

	// Err is the classification error message for Unknown and BadArity.
	Err string
}

// Valid reports whether the directive classified cleanly.
func (d Directive) Valid() bool {
	return d.Kind != Unknown && d.Kind != BadArity
}

// keywords maps each custom directive keyword to its kind and required
// argument count. Matching is exact.
var keywords = map[string]struct {
	kind  Kind
	arity int
}{
	"end":            {End, 0},
	"module":         {Module, 1},
	"vert":           {Vert, 1},
	"frag":           {Frag, 1},
	"program":        {Program, 3},
	"include":        {Include, 1},
	"include_module": {IncludeModule, 1},
	"ctypedef":       {CTypedef, 2},
}

// passThrough is the set of GLSL preprocessor keywords left uninterpreted.
// Argument counts are not checked for these.
var passThrough = map[string]bool{
	"define":    true,
	"undef":     true,
	"if":        true,
	"ifdef":     true,
	"ifndef":    true,
	"else":      true,
	"elif":      true,
	"endif":     true,
	"error":     true,
	"pragma":    true,
	"extension": true,
	"version":   true,
	"line":      true,
}

// Split breaks one directive statement (the line text after the leading `#`,
// without the trailing newline) into its whitespace-delimited words. Runs of
// whitespace collapse; there is no quoting or escaping. A statement of only
// whitespace yields nil.
func Split(statement string) []string {
	words := strings.Fields(statement)
	if len(words) == 0 {
		return nil
	}
	return words
}

// Classify matches the first word of a statement against the keyword tables
// and validates the argument count for custom directives.
func Classify(words []string) Directive {
	if len(words) == 0 {
		return Directive{Kind: Unknown, Err: "empty directive"}
	}

	keyword := words[0]
	args := words[1:]

	if entry, ok := keywords[keyword]; ok {
		if len(args) != entry.arity {
			return Directive{
				Kind: BadArity,
				Err:  fmt.Sprintf("%s: expected %d argument(s), got %d", keyword, entry.arity, len(args)),
			}
		}
		d := Directive{Kind: entry.kind}
		copy(d.Args[:], args)
		return d
	}

	if passThrough[keyword] {
		return Directive{Kind: PassThrough}
	}

	return Directive{Kind: Unknown, Err: fmt.Sprintf("%s: invalid token", keyword)}
}

// Arity returns the declared argument count for a custom directive kind,
// or -1 for kinds with no declared arity.
func Arity(kind Kind) int {
	for _, entry := range keywords {
		if entry.kind == kind {
			return entry.arity
		}
	}
	return -1
}

// String returns the keyword for custom kinds and a descriptive name
// otherwise.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case BadArity:
		return "bad-arity"
	case PassThrough:
		return "passthrough"
	case End:
		return "end"
	case Module:
		return "module"
	case Vert:
		return "vert"
	case Frag:
		return "frag"
	case Program:
		return "program"
	case Include:
		return "include"
	case IncludeModule:
		return "include_module"
	case CTypedef:
		return "ctypedef"
	}
	return "invalid"
}
