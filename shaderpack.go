// Package shaderpack composes annotated GLSL source into named modules and
// a linked program.
//
// Source files carry `#`-prefixed directive lines that open and close named
// modules (generic, vertex, or fragment), include other files through an
// ordered search-path list, splice finished modules into each other, pair
// one vertex module with one fragment module as the program, and register
// GLSL→host type-name mappings for downstream code generation. Standard
// GLSL preprocessor directives (#version, #define, ...) pass through
// verbatim.
//
// Example usage:
//
//	source := `
//	#vert v
//	void main() { gl_Position = vec4(0.0); }
//	#end
//	#frag f
//	void main() {}
//	#end
//	#program triangle v f
//	`
//	artifact, diags := shaderpack.Parse(source, shaderpack.DefaultOptions())
//	if diags.HasErrors() {
//	    log.Fatal(diags.FormatAll())
//	}
//	fmt.Println(artifact.Program.VertexSource)
//
// Parsing never aborts on bad input: every problem is collected as a
// structured diagnostic and the artifact is returned as far as it could be
// built.
package shaderpack

import (
	"strings"

	"github.com/gogpu/shaderpack/compose"
)

// Options configures one parse invocation.
type Options struct {
	// SearchPaths is the ordered list of directories consulted to resolve
	// include directives.
	SearchPaths []string

	// MaxIncludeDepth bounds include nesting. Zero selects
	// compose.DefaultMaxIncludeDepth.
	MaxIncludeDepth int
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		MaxIncludeDepth: compose.DefaultMaxIncludeDepth,
	}
}

// ProgramSource is the linked program's output form: the composed vertex
// and fragment source texts, owned by the artifact.
type ProgramSource struct {
	Name           string
	VertexSource   string
	FragmentSource string
}

// Artifact is the result of one parse: the program (zero-valued when no
// program directive succeeded) and the full GLSL→host type mapping.
type Artifact struct {
	Program ProgramSource
	Types   map[string]string
}

// Parse scans annotated GLSL source text and extracts the artifact.
//
// The returned artifact is always non-nil and owns all of its data; an
// empty diagnostics list means the source parsed clean.
func Parse(source string, opts Options) (*Artifact, compose.Diagnostics) {
	ctx := compose.NewContext(opts.SearchPaths, opts.MaxIncludeDepth)
	ctx.ScanSource("<source>", source)
	ctx.Finish()
	return extract(ctx), ctx.Diagnostics()
}

// ParseFile reads and scans a root source file. The file's directory is
// prepended to the search paths so sibling includes resolve naturally. The
// error covers only reading the root file; everything found during the
// parse is in the diagnostics.
func ParseFile(path string, opts Options) (*Artifact, compose.Diagnostics, error) {
	ctx := compose.NewContext(opts.SearchPaths, opts.MaxIncludeDepth)
	if err := ctx.ScanFile(path); err != nil {
		return nil, nil, err
	}
	ctx.Finish()
	return extract(ctx), ctx.Diagnostics(), nil
}

// extract deep-copies everything that outlives the parse: the program's
// name and composed sources, and the whole type mapping. Modules not
// reachable from the program are discarded with the context.
func extract(ctx *compose.Context) *Artifact {
	artifact := &Artifact{
		Types: ctx.Types().Pairs(),
	}
	if program, ok := ctx.Program(); ok {
		artifact.Program = ProgramSource{
			Name:           strings.Clone(program.Name),
			VertexSource:   strings.Clone(program.Vertex.Code),
			FragmentSource: strings.Clone(program.Fragment.Code),
		}
	}
	return artifact
}
