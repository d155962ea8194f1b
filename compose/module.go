package compose

// ModuleKind tags a module with the directive that opened it.
type ModuleKind uint8

const (
	KindNone ModuleKind = iota
	KindGeneric
	KindVertex
	KindFragment
)

// String returns a human-readable name for the kind.
func (k ModuleKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindGeneric:
		return "module"
	case KindVertex:
		return "vertex"
	case KindFragment:
		return "fragment"
	}
	return "unknown"
}

// Module is a finalized, named block of composed source text.
type Module struct {
	Name string
	Kind ModuleKind

	// Code is the ordered concatenation of the module's captured spans with
	// leading and trailing whitespace trimmed.
	Code string
}

// Program pairs one vertex module with one fragment module. At most one
// program exists per parse.
type Program struct {
	Name     string
	Vertex   *Module
	Fragment *Module
}

// ModuleRegistry is the name-keyed table of finalized modules. Insertion is
// a hard uniqueness check: the first definition under a name always wins.
type ModuleRegistry struct {
	modules []*Module
	byName  map[string]*Module
}

// NewModuleRegistry creates an empty module registry.
func NewModuleRegistry() *ModuleRegistry {
	return &ModuleRegistry{
		modules: make([]*Module, 0, 16),
		byName:  make(map[string]*Module, 16),
	}
}

// Insert adds a module under its name. It returns false if the name is
// already taken; the existing definition is retained.
func (r *ModuleRegistry) Insert(m *Module) bool {
	if _, exists := r.byName[m.Name]; exists {
		return false
	}
	r.modules = append(r.modules, m)
	r.byName[m.Name] = m
	return true
}

// Lookup returns the module registered under name, if any.
func (r *ModuleRegistry) Lookup(name string) (*Module, bool) {
	m, ok := r.byName[name]
	return m, ok
}

// Count returns the number of registered modules.
func (r *ModuleRegistry) Count() int {
	return len(r.modules)
}

// Modules returns all registered modules in insertion order.
func (r *ModuleRegistry) Modules() []*Module {
	return r.modules
}

// TypeRegistry maps GLSL type names to host-language type names, populated
// by ctypedef directives. Duplicate keys are rejected; the first mapping
// under a key wins, matching the module registry's policy.
type TypeRegistry struct {
	names  []string
	byName map[string]string
}

// NewTypeRegistry creates an empty type registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		names:  make([]string, 0, 16),
		byName: make(map[string]string, 16),
	}
}

// Insert adds a glsl→host mapping. It returns false if the GLSL name is
// already mapped; the existing mapping is retained.
func (r *TypeRegistry) Insert(glslType, hostType string) bool {
	if _, exists := r.byName[glslType]; exists {
		return false
	}
	r.names = append(r.names, glslType)
	r.byName[glslType] = hostType
	return true
}

// Lookup returns the host type mapped to a GLSL type name, if any.
func (r *TypeRegistry) Lookup(glslType string) (string, bool) {
	host, ok := r.byName[glslType]
	return host, ok
}

// Count returns the number of mappings.
func (r *TypeRegistry) Count() int {
	return len(r.names)
}

// Pairs returns a copy of the full mapping. The copy is safe to retain
// after the parse.
func (r *TypeRegistry) Pairs() map[string]string {
	pairs := make(map[string]string, len(r.byName))
	for k, v := range r.byName {
		pairs[k] = v
	}
	return pairs
}
