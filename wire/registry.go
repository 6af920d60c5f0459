package wire

import (
	"fmt"

	"github.com/arjunveer/pgwire/oid"
)

// Reader decodes the bytes addressed by a Cursor into a host value.
type Reader func(c *Cursor) (interface{}, error)

// entry is a Type Registry row: the text and/or binary reader
// registered for one OID. Either reader may be nil, meaning that
// wire format falls back to raw bytes / raw text (§4.10 dispatch
// step 4).
type entry struct {
	text   Reader
	binary Reader
}

// Registry maps PostgreSQL type OIDs to their registered readers. It
// is built once by NewRegistry and is read-only thereafter — safe for
// concurrent use from multiple connections (§5).
type Registry struct {
	entries map[oid.OID]entry
}

// NewRegistry builds the registry by merging every per-family
// registration function. Registration order must not matter: each
// family registers disjoint OIDs, and a duplicate registration is a
// programming error that panics immediately rather than silently
// overriding an earlier entry — grounded on poque's
// register_result_converters merge chain in ctypes/result.py, which
// the spec's §9 "Registry population" guidance asks to preserve.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[oid.OID]entry, 128)}
	registerNumeric(r)
	registerText(r)
	registerTemporal(r)
	registerNetwork(r)
	registerGeometric(r)
	registerBitstring(r)
	registerVarious(r)
	registerArrays(r)
	return r
}

// register adds a scalar OID's readers. It panics if oid already has
// an entry.
func (r *Registry) register(o oid.OID, text, binary Reader) {
	if _, exists := r.entries[o]; exists {
		panic(fmt.Sprintf("pgwire: duplicate registry entry for %s", oid.Name(o)))
	}
	r.entries[o] = entry{text: text, binary: binary}
}

// registerArrays binds every known array OID to a generic array
// reader parameterized by its element OID, resolved from the
// registry at decode time rather than at registration time so a
// forward-referenced element family registers independently of array
// registration order.
func registerArrays(r *Registry) {
	oid.EachArray(func(arr, elem oid.OID) {
		r.register(arr, nil, arrayReader(r, elem))
	})
}

// Binary returns the binary-mode reader registered for o, or nil if
// none is registered (caller falls back to raw bytes).
func (r *Registry) Binary(o oid.OID) Reader {
	return r.entries[o].binary
}

// Text returns the text-mode reader registered for o, or nil if none
// is registered (caller falls back to the server's literal text).
func (r *Registry) Text(o oid.OID) Reader {
	return r.entries[o].text
}

// Lookup reports whether o has any registered entry at all (used by
// the Result Facade's dispatch step 3, §4.10).
func (r *Registry) Lookup(o oid.OID) bool {
	_, ok := r.entries[o]
	return ok
}
