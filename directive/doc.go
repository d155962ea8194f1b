// Package directive implements the front end of the shaderpack directive
// mini-language.
//
// A directive is a single `#`-prefixed line inside annotated GLSL source.
// The package splits a directive line into whitespace-delimited words and
// classifies the first word against two fixed tables:
//
//   - custom shaderpack keywords (end, module, vert, frag, program, include,
//     include_module, ctypedef), each with a required argument count
//   - standard GLSL preprocessor keywords (define, ifdef, version, ...),
//     which are recognized only so they can be passed through verbatim
//
// The package is purely lexical: it never interprets a directive and never
// touches the file system. Interpretation lives in the compose package.
package directive
