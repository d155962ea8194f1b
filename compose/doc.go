// Package compose implements the stateful scan-and-compose pass of
// shaderpack.
//
// # Components
//
//   - Scanner: a byte-level scan over one source buffer that detects line
//     comments, detects directive lines, and captures the raw text spans
//     between directives for the currently open module
//   - Context: the directive interpreter state threaded through every nested
//     parse — composition state, module and type registries, the program
//     slot, diagnostics, and the include frame stack
//   - Include resolution: ordered search-path lookup with recursive scanning
//     of included files through the same shared Context
//   - ModuleRegistry / TypeRegistry: name-keyed tables with insert-once
//     semantics
//
// # Usage
//
//	ctx := compose.NewContext([]string{"shaders"}, compose.DefaultMaxIncludeDepth)
//	ctx.ScanSource("scene.glsl", source)
//	ctx.Finish()
//	program, ok := ctx.Program()
//	diags := ctx.Diagnostics()
//
// Errors never abort the scan: every problem is recorded as a Diagnostic and
// scanning continues, so one pass collects everything wrong with a source
// tree.
package compose
