package events

import (
	"fmt"
	"sort"
)

// Registry maps response names to typed callbacks so binders can be wired
// from data files. Each name is registered for exactly one channel type.
type Registry struct {
	generic map[string]func()
	ints    map[string]func(int)
	bools   map[string]func(bool)
	floats  map[string]func(float32)
	strings map[string]func(string)
}

func NewRegistry() *Registry {
	return &Registry{
		generic: map[string]func(){},
		ints:    map[string]func(int){},
		bools:   map[string]func(bool){},
		floats:  map[string]func(float32){},
		strings: map[string]func(string){},
	}
}

func (r *Registry) has(name string) bool {
	_, g := r.generic[name]
	_, i := r.ints[name]
	_, b := r.bools[name]
	_, f := r.floats[name]
	_, s := r.strings[name]
	return g || i || b || f || s
}

func (r *Registry) claim(name string) {
	if r.has(name) {
		panic(fmt.Sprintf("response %q already registered", name))
	}
}

// RegisterGeneric panics if name is already taken, like any duplicate
// registration below.
func (r *Registry) RegisterGeneric(name string, fn func()) {
	r.claim(name)
	r.generic[name] = fn
}

func (r *Registry) RegisterInt(name string, fn func(int)) {
	r.claim(name)
	r.ints[name] = fn
}

func (r *Registry) RegisterBool(name string, fn func(bool)) {
	r.claim(name)
	r.bools[name] = fn
}

func (r *Registry) RegisterFloat(name string, fn func(float32)) {
	r.claim(name)
	r.floats[name] = fn
}

func (r *Registry) RegisterString(name string, fn func(string)) {
	r.claim(name)
	r.strings[name] = fn
}

// Names returns every registered response name, sorted.
func (r *Registry) Names() []string {
	var names []string
	for n := range r.generic {
		names = append(names, n)
	}
	for n := range r.ints {
		names = append(names, n)
	}
	for n := range r.bools {
		names = append(names, n)
	}
	for n := range r.floats {
		names = append(names, n)
	}
	for n := range r.strings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
