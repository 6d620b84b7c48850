package interp

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/shamaton/msgpack/v2"
)

// Variables maps names to the last value assigned to them. A table lives for
// a whole session and is shared by every line evaluated in it. It is not
// safe for concurrent use.
type Variables struct {
	table map[string]float64
}

func NewVariables() *Variables {
	return &Variables{
		table: make(map[string]float64),
	}
}

func (v *Variables) Insert(name string, value float64) {
	if v.table == nil {
		v.table = make(map[string]float64)
	}
	v.table[name] = value
}

// Lookup returns the value bound to name and whether it was bound at all.
// A miss is an ordinary outcome for the evaluator.
func (v *Variables) Lookup(name string) (float64, bool) {
	if v.table == nil {
		return 0, false
	}
	val, ok := v.table[name]
	return val, ok
}

// Get is Lookup for callers that treat a miss as a failure.
func (v *Variables) Get(name string) (float64, error) {
	val, ok := v.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
	}
	return val, nil
}

func (v *Variables) Len() int {
	return len(v.table)
}

// Names returns the bound names in sorted order.
func (v *Variables) Names() []string {
	return slices.Sorted(maps.Keys(v.table))
}

func (v *Variables) Clone() *Variables {
	out := NewVariables()
	for k, val := range v.table {
		out.table[k] = val
	}
	return out
}

// Restore replaces the contents of v with those of other.
func (v *Variables) Restore(other *Variables) {
	v.table = other.Clone().table
}

type binding struct {
	Name  string
	Value float64
}

type serializedVariables struct {
	Bindings []binding
}

// Serialize writes the table with bindings sorted by name, so equal tables
// always produce equal bytes.
func (v *Variables) Serialize(w io.Writer) error {
	var out serializedVariables
	for _, name := range v.Names() {
		out.Bindings = append(out.Bindings, binding{Name: name, Value: v.table[name]})
	}
	return msgpack.MarshalWrite(w, &out)
}

func (v *Variables) Deserialize(r io.Reader) error {
	var in serializedVariables
	if err := msgpack.UnmarshalRead(r, &in); err != nil {
		return err
	}
	v.table = make(map[string]float64, len(in.Bindings))
	for _, b := range in.Bindings {
		v.table[b.Name] = b.Value
	}
	return nil
}
