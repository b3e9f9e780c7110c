// Package binding implements BindingEnvironment: the layered name-to-
// value-number scope stack the code generator consults to resolve a
// let-bound name to its current SSA value, and to build phi operand
// vectors across control-flow joins.
package binding

import "sort"

// Env is a stack of binding layers. Layer 0 is the function-wide layer;
// each nested scope (if/else arm, while body, spawn body) pushes one
// more layer and pops back to its starting depth on exit.
type Env struct {
	layers []map[string]int
}

// New returns an Env with a single, empty base layer.
func New() *Env {
	return &Env{layers: []map[string]int{{}}}
}

// Depth returns the current number of layers, suitable for saving and
// later passing to PopTo.
func (e *Env) Depth() int { return len(e.layers) }

// Push opens a new, empty layer on top of the stack.
func (e *Env) Push() { e.layers = append(e.layers, map[string]int{}) }

// PopTo discards every layer above depth, restoring the stack to the
// shape it had when Depth() returned depth.
func (e *Env) PopTo(depth int) { e.layers = e.layers[:depth] }

// Bind records that name now resolves to valnum, in the topmost layer.
func (e *Env) Bind(name string, valnum int) {
	e.layers[len(e.layers)-1][name] = valnum
}

// Lookup searches layers top-down and returns the first binding found.
func (e *Env) Lookup(name string) (int, bool) {
	for i := len(e.layers) - 1; i >= 0; i-- {
		if v, ok := e.layers[i][name]; ok {
			return v, true
		}
	}
	return 0, false
}

// Has reports whether name is bound anywhere on the stack.
func (e *Env) Has(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

// Keys returns every name currently visible, most-recently-bound name
// winning ties, sorted for deterministic iteration.
func (e *Env) Keys() []string {
	seen := make(map[string]bool)
	for i := len(e.layers) - 1; i >= 0; i-- {
		for k := range e.layers[i] {
			seen[k] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Overlay snapshots the current value number of every visible key. The
// resulting map is a self-contained view of "what this arm of a branch
// sees", independent of the live Env, suitable for passing to
// JoinOverlays once every arm has been walked. Because it reports every
// live key regardless of whether this arm actually rebound it, it is
// redundant-by-design for the while-loop header/footer seeding
// (walkWhile), which wants every live binding represented whether or
// not the loop body touches it. An if/else join wants the narrower
// OverlayFrom instead, or every untouched binding picks up a spurious
// phi.
func (e *Env) Overlay() map[string]int {
	keys := e.Keys()
	m := make(map[string]int, len(keys))
	for _, k := range keys {
		v, _ := e.Lookup(k)
		m[k] = v
	}
	return m
}

// OverlayFrom snapshots only the keys bound in layers at or above level
// — the names this arm actually rebound itself, not every binding
// merely visible to it. A key rebound in a nested, already-popped
// scope still shows up here, since any value that survives to the end
// of the arm must have been re-bound into one of these layers (nested
// control-flow joins bind their own merge phi back into the nearest
// enclosing layer). Layers are visited bottom-up so a binding in a
// higher layer wins over one for the same key in a lower layer.
func (e *Env) OverlayFrom(level int) map[string]int {
	m := make(map[string]int)
	for i := level; i < len(e.layers); i++ {
		for k, v := range e.layers[i] {
			m[k] = v
		}
	}
	return m
}

// JoinOverlays merges N overlays captured from N parallel control-flow
// paths (the arms of an if/else, or a while loop's back-edge and
// fallthrough) into per-key operand vectors suitable for building phi
// statements, one vector entry per overlay in the order given. A key
// absent from a given overlay (the corresponding arm never rebound it)
// falls back to the value visible in base, the environment as it stood
// immediately before the branch.
func JoinOverlays(base map[string]int, overlays []map[string]int) map[string][]int {
	keys := make(map[string]bool)
	for _, ov := range overlays {
		for k := range ov {
			keys[k] = true
		}
	}

	result := make(map[string][]int, len(keys))
	for k := range keys {
		vec := make([]int, len(overlays))
		for i, ov := range overlays {
			if v, ok := ov[k]; ok {
				vec[i] = v
			} else {
				vec[i] = base[k]
			}
		}
		result[k] = vec
	}
	return result
}
