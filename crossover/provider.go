package crossover

import (
	"math/rand"
	"reflect"

	"github.com/katalvlaran/lvlfuzz/mutator"
)

// Entry is one catalog row: a sub-value reachable via Path, at the
// complexity it carried when the catalog was built.
type Entry struct {
	Path       mutator.LensPath
	Complexity float64
}

// Cursor is Provider's opaque GetSubvalue progress marker. Provider
// hands out *Cursor values, so a nil cursor (the "start over" sentinel
// every Mutator.CrossoverMutate passes on its first call) is always
// distinguishable from a Provider cursor in progress.
type Cursor struct {
	start int
	seen  int
}

// Provider is the concrete mutator.SubValueProvider spec.md §4.7
// describes: a catalog of an existing interesting input's addressable
// sub-values, built once via Mutator.AllPaths, served back out by type
// through Mutator.Lens.
//
// Every Mutator in this module returns a pointer to the addressed field
// from Lens (AllPaths registers the pointee's reflect.Type, not the
// pointer's), so Provider dereferences one level before comparing
// against the catalog's type key and before handing the sub-value back
// to a caller expecting the bare value.
type Provider struct {
	idx, generation uint64
	catalog         map[reflect.Type][]Entry
	lens            func(path mutator.LensPath) (any, bool)
	rng             *rand.Rand
}

// NewFromMutator walks m.AllPaths(value, cache, ...) once to build the
// catalog backing a Provider, and wires GetSubvalue's reads back through
// m.Lens. idx and generation are an opaque identity for the input this
// catalog was built from (its PoolStorageIndex and a counter the caller
// bumps each time the provider is rebuilt from a new value), returned
// verbatim by Identity so callers can cache providers by source input.
//
// value and cache must remain valid and unmutated for as long as the
// returned Provider is used: Lens dereferences them lazily, on every
// GetSubvalue call, rather than snapshotting sub-values up front.
func NewFromMutator[V any](idx, generation uint64, m mutator.Mutator[V], value *V, cache mutator.Cache, seed int64) *Provider {
	catalog := make(map[reflect.Type][]Entry)
	m.AllPaths(value, cache, func(typ reflect.Type, path mutator.LensPath, cplx float64) {
		catalog[typ] = append(catalog[typ], Entry{Path: path, Complexity: cplx})
	})
	return &Provider{
		idx:        idx,
		generation: generation,
		catalog:    catalog,
		lens: func(path mutator.LensPath) (any, bool) {
			return m.Lens(value, cache, path)
		},
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Identity returns the identity NewFromMutator was given.
func (p *Provider) Identity() (idx uint64, generation uint64) {
	return p.idx, p.generation
}

// GetSubvalue implements mutator.SubValueProvider. On a fresh query
// (cursor == nil) it starts at a random offset into the catalog's
// entries for typ, so that repeated nil-cursor calls from a mutator's
// CrossoverMutate do not always return the same sub-value — matching
// spec.md §4.7's "picks a random compatible path". It then walks the
// catalog in a fixed cyclic order from that offset, skipping entries
// over budget or whose Lens has since gone stale (e.g. a vector element
// removed from the source input after the catalog was built), until it
// finds one within maxCplx or exhausts the catalog.
func (p *Provider) GetSubvalue(typ reflect.Type, maxCplx float64, cursor any) (value any, nextCursor any, ok bool) {
	entries := p.catalog[typ]
	if len(entries) == 0 {
		return nil, nil, false
	}

	var c *Cursor
	if cursor == nil {
		c = &Cursor{start: p.rng.Intn(len(entries))}
	} else {
		var isCursor bool
		c, isCursor = cursor.(*Cursor)
		if !isCursor {
			panic("crossover: cursor did not originate from this Provider")
		}
	}

	for c.seen < len(entries) {
		i := (c.start + c.seen) % len(entries)
		c.seen++
		if entries[i].Complexity > maxCplx {
			continue
		}
		sub, found := p.lens(entries[i].Path)
		if !found {
			continue
		}
		sub = dereferenceIfPointerTo(sub, typ)
		return sub, &Cursor{start: c.start, seen: c.seen}, true
	}
	return nil, nil, false
}

// dereferenceIfPointerTo unwraps v by one level when v is a pointer
// whose element type is typ, reconciling Lens's "pointer to sub-value"
// return convention with AllPaths's "sub-value's own type" catalog key.
func dereferenceIfPointerTo(v any, typ reflect.Type) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Type() == typ {
		return rv.Elem().Interface()
	}
	return v
}
