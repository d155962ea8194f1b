package compose

import (
	"strings"
	"testing"
)

func TestDiagnosticError(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			"full location",
			Diagnostic{Kind: DiagState, File: "a.glsl", Line: 3, Message: "extraneous end directive"},
			"a.glsl:3: extraneous end directive",
		},
		{
			"file only",
			Diagnostic{Kind: DiagState, File: "a.glsl", Message: "m: module is never ended"},
			"a.glsl: m: module is never ended",
		},
		{
			"bare message",
			Diagnostic{Kind: DiagResource, Message: "no search paths configured"},
			"no search paths configured",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diag.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiagnosticsError(t *testing.T) {
	var ds Diagnostics
	if ds.HasErrors() {
		t.Error("empty list should have no errors")
	}
	if got := ds.Error(); got != "no diagnostics" {
		t.Errorf("Error() = %q", got)
	}

	ds.Addf(DiagLexical, "a.glsl", 1, "%s: invalid token", "bogus")
	if got := ds.Error(); got != "a.glsl:1: bogus: invalid token" {
		t.Errorf("Error() = %q", got)
	}

	ds.Addf(DiagSyntax, "a.glsl", 2, "end: expected 0 argument(s), got 1")
	if !strings.Contains(ds.Error(), "and 1 more") {
		t.Errorf("Error() = %q, want a summary of the remainder", ds.Error())
	}
	if ds.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ds.Len())
	}
}

func TestDiagnosticsFormatAll(t *testing.T) {
	var ds Diagnostics
	ds.Addf(DiagLexical, "a.glsl", 1, "first")
	ds.Addf(DiagState, "b.glsl", 9, "second")

	got := ds.FormatAll()
	want := "a.glsl:1: first\nb.glsl:9: second"
	if got != want {
		t.Errorf("FormatAll() = %q, want %q", got, want)
	}
}

func TestDiagKindString(t *testing.T) {
	tests := []struct {
		kind DiagKind
		want string
	}{
		{DiagLexical, "lexical"},
		{DiagSyntax, "syntax"},
		{DiagState, "state"},
		{DiagResource, "resource"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("DiagKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
