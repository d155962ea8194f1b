package compose

import (
	"testing"
)

func TestModuleRegistry_InsertAndLookup(t *testing.T) {
	registry := NewModuleRegistry()

	m := &Module{Name: "lighting", Kind: KindGeneric, Code: "float x;"}
	if !registry.Insert(m) {
		t.Fatal("expected first insert to succeed")
	}

	got, ok := registry.Lookup("lighting")
	if !ok {
		t.Fatal("expected lookup to find the module")
	}
	if got != m {
		t.Error("lookup returned a different module")
	}
	if registry.Count() != 1 {
		t.Errorf("Count() = %d, want 1", registry.Count())
	}
}

func TestModuleRegistry_DuplicateKeepsFirst(t *testing.T) {
	registry := NewModuleRegistry()

	first := &Module{Name: "m", Kind: KindGeneric, Code: "first"}
	second := &Module{Name: "m", Kind: KindVertex, Code: "second"}

	if !registry.Insert(first) {
		t.Fatal("expected first insert to succeed")
	}
	if registry.Insert(second) {
		t.Error("expected duplicate insert to be rejected")
	}

	got, ok := registry.Lookup("m")
	if !ok {
		t.Fatal("expected lookup to find the module")
	}
	if got.Code != "first" {
		t.Errorf("retained Code = %q, want %q", got.Code, "first")
	}
	if registry.Count() != 1 {
		t.Errorf("Count() = %d, want 1", registry.Count())
	}
}

func TestModuleRegistry_LookupMissing(t *testing.T) {
	registry := NewModuleRegistry()
	if _, ok := registry.Lookup("missing"); ok {
		t.Error("expected lookup of missing name to report not found")
	}
}

func TestModuleRegistry_InsertionOrder(t *testing.T) {
	registry := NewModuleRegistry()
	names := []string{"c", "a", "b"}
	for _, name := range names {
		registry.Insert(&Module{Name: name, Kind: KindGeneric})
	}

	modules := registry.Modules()
	if len(modules) != 3 {
		t.Fatalf("expected 3 modules, got %d", len(modules))
	}
	for i, name := range names {
		if modules[i].Name != name {
			t.Errorf("modules[%d].Name = %q, want %q", i, modules[i].Name, name)
		}
	}
}

func TestTypeRegistry_InsertAndLookup(t *testing.T) {
	registry := NewTypeRegistry()

	if !registry.Insert("vec3", "Vec3") {
		t.Fatal("expected first insert to succeed")
	}

	host, ok := registry.Lookup("vec3")
	if !ok {
		t.Fatal("expected lookup to find the mapping")
	}
	if host != "Vec3" {
		t.Errorf("Lookup(vec3) = %q, want Vec3", host)
	}
}

func TestTypeRegistry_DuplicateKeepsFirst(t *testing.T) {
	registry := NewTypeRegistry()

	registry.Insert("vec3", "Vec3")
	if registry.Insert("vec3", "AnotherVec3") {
		t.Error("expected duplicate insert to be rejected")
	}

	host, _ := registry.Lookup("vec3")
	if host != "Vec3" {
		t.Errorf("retained mapping = %q, want Vec3", host)
	}
	if registry.Count() != 1 {
		t.Errorf("Count() = %d, want 1", registry.Count())
	}
}

func TestTypeRegistry_PairsIsACopy(t *testing.T) {
	registry := NewTypeRegistry()
	registry.Insert("vec2", "Vec2")

	pairs := registry.Pairs()
	pairs["vec2"] = "Corrupted"
	pairs["mat4"] = "Mat4"

	host, _ := registry.Lookup("vec2")
	if host != "Vec2" {
		t.Error("mutating the exported map changed the registry")
	}
	if registry.Count() != 1 {
		t.Errorf("Count() = %d, want 1", registry.Count())
	}
}

func TestModuleKindString(t *testing.T) {
	tests := []struct {
		kind ModuleKind
		want string
	}{
		{KindNone, "none"},
		{KindGeneric, "module"},
		{KindVertex, "vertex"},
		{KindFragment, "fragment"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ModuleKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
