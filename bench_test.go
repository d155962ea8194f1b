package shaderpack

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Benchmark sources — annotated GLSL at different complexity levels
// ---------------------------------------------------------------------------

// benchSmall is a minimal two-module program.
const benchSmall = `#vert vs
void main() { gl_Position = vec4(0.0); }
#end
#frag fs
void main() {}
#end
#program small vs fs
`

// benchMedium exercises generic modules, splicing, pass-through
// directives, and the type table.
const benchMedium = `#ctypedef vec2 Vec2
#ctypedef vec3 Vec3
#ctypedef vec4 Vec4
#ctypedef mat4 Mat4

#module lighting
// Blinn-Phong helpers
vec3 diffuse(vec3 n, vec3 l, vec3 albedo) {
    return albedo * max(dot(n, l), 0.0);
}
vec3 specular(vec3 n, vec3 h, float power) {
    return vec3(pow(max(dot(n, h), 0.0), power));
}
#end

#vert scene_vs
#version 330 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
uniform mat4 mvp;
out vec3 vNormal;
void main() {
    vNormal = normal;
    gl_Position = mvp * vec4(position, 1.0);
}
#end

#frag scene_fs
#version 330 core
#include_module lighting
in vec3 vNormal;
out vec4 fragColor;
uniform vec3 lightDir;
void main() {
    vec3 d = diffuse(normalize(vNormal), lightDir, vec3(0.8));
    fragColor = vec4(d, 1.0);
}
#end

#program scene scene_vs scene_fs
`

func benchLarge() string {
	var sb strings.Builder
	for i := 0; i < 32; i++ {
		sb.WriteString("#module helper_")
		sb.WriteByte(byte('a' + i%26))
		sb.WriteByte(byte('0' + i/26))
		sb.WriteString("\nfloat helper() { return 1.0; }\n#end\n")
	}
	sb.WriteString(benchMedium)
	return sb.String()
}

func BenchmarkParseSmall(b *testing.B) {
	b.SetBytes(int64(len(benchSmall)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		artifact, diags := Parse(benchSmall, DefaultOptions())
		if diags.HasErrors() {
			b.Fatal(diags.FormatAll())
		}
		_ = artifact
	}
}

func BenchmarkParseMedium(b *testing.B) {
	b.SetBytes(int64(len(benchMedium)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		artifact, diags := Parse(benchMedium, DefaultOptions())
		if diags.HasErrors() {
			b.Fatal(diags.FormatAll())
		}
		_ = artifact
	}
}

func BenchmarkParseLarge(b *testing.B) {
	source := benchLarge()
	b.SetBytes(int64(len(source)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		artifact, diags := Parse(source, DefaultOptions())
		if diags.HasErrors() {
			b.Fatal(diags.FormatAll())
		}
		_ = artifact
	}
}
