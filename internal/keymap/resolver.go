package keymap

// Resolver maps key strings to the action they trigger in one set of
// contexts.
type Resolver struct {
	actions map[string]Action
	order   []string // keys in binding order
}

// NewResolver creates a resolver from bindings. When two bindings share a
// key, the first one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{actions: make(map[string]Action)}
	for _, b := range bindings {
		for _, key := range b.Keys {
			if _, taken := r.actions[key]; taken {
				continue
			}
			r.actions[key] = b.Action
			r.order = append(r.order, key)
		}
	}
	return r
}

// NewContextResolver resolves the bindings of contexts, earlier contexts
// shadowing later ones.
func NewContextResolver(contexts ...string) *Resolver {
	return NewResolver(ForContexts(contexts...))
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys that resolve to action, in binding order. A key
// shadowed by an earlier binding is not listed.
func (r *Resolver) KeysFor(action Action) []string {
	var keys []string
	for _, key := range r.order {
		if r.actions[key] == action {
			keys = append(keys, key)
		}
	}
	return keys
}
