package display

// Registry maps tool identifiers to layout Configs. Registration happens
// once during startup, strictly before the first lookup; nothing guards the
// map, so late registration from another goroutine is not supported.
type Registry struct {
	configs map[string]*Config
}

// NewRegistry returns a registry populated with every built-in tool layout.
func NewRegistry() *Registry {
	r := &Registry{configs: make(map[string]*Config)}
	r.registerBuiltins()
	return r
}

// Register installs cfg for the given tool identifier. Last write wins.
func (r *Registry) Register(id string, cfg *Config) {
	r.configs[id] = cfg
}

// Lookup returns the config registered for id, or nil.
func (r *Registry) Lookup(id string) *Config {
	return r.configs[id]
}

// Has reports whether a config is registered for id.
func (r *Registry) Has(id string) bool {
	_, ok := r.configs[id]
	return ok
}

// Resolve returns the config for id, falling back to a generic default for
// unregistered tools. Never returns nil.
func (r *Registry) Resolve(id string) *Config {
	if cfg, ok := r.configs[id]; ok {
		return cfg
	}
	return defaultConfig(id)
}

// defaultConfig is the fallback for tools with no registered layout: just an
// abbreviated name, no header, body, or result preview.
func defaultConfig(id string) *Config {
	return &Config{
		Abbreviation: "tool",
		Name:         TruncateLine(id, 8),
	}
}

// registerBuiltins installs the layout for every known tool kind. Order is
// irrelevant; each entry is independent.
func (r *Registry) registerBuiltins() {
	r.Register("bash", bashLayout())
	r.Register("web_search", webSearchLayout())
	r.Register("web_fetch", webFetchLayout())
	r.Register("file_write", fileWriteLayout())
	r.Register("file_edit", fileEditLayout())
	r.Register("file_read", fileReadLayout())
	r.Register("grep", grepLayout())
	r.Register("task", taskLayout())
	r.Register("citations", citationsLayout())
	r.Register("todo_write", todoLayout())
}
