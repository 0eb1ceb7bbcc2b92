package heuristic

// Registry holds rules keyed by RuleKey, in registration order.
type Registry struct {
	rules []Rule
	byKey map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]int)}
}

// NewDefaultRegistry returns a registry with the built-in rules, indentation
// first.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(IndentationRule{})
	r.Register(UndefinedVariableRule{})
	return r
}

// Register adds a rule. Registering a key twice replaces the earlier rule in
// place.
func (r *Registry) Register(rule Rule) {
	if idx, ok := r.byKey[rule.RuleKey()]; ok {
		r.rules[idx] = rule
		return
	}
	r.byKey[rule.RuleKey()] = len(r.rules)
	r.rules = append(r.rules, rule)
}

// Get returns the rule for a key, or nil if not found.
func (r *Registry) Get(key string) Rule {
	idx, ok := r.byKey[key]
	if !ok {
		return nil
	}
	return r.rules[idx]
}

// All returns all registered rules in registration order.
func (r *Registry) All() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}
