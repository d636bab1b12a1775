package enum

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/phpcompatible/enumup/pkg/naming"
)

// Declarer is implemented by enumeration types. The dynamic Go type of the
// Declarer is the enumeration's identity; EnumCases is called once per
// Registry, on first access.
type Declarer interface {
	EnumCases() []Member
}

// Registry owns the per-type singletons. A type's state is created on first
// access of any kind and lives as long as the Registry.
type Registry struct {
	mu    sync.Mutex
	types map[reflect.Type]*typeState
}

// Default is the process-lifetime registry used by the package-level helpers.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{types: make(map[reflect.Type]*typeState)}
}

// Resolve returns the case whose name normalizes to the same key as rawName.
func (r *Registry) Resolve(d Declarer, rawName string) (*Value, error) {
	st, err := r.state(d)
	if err != nil {
		return nil, err
	}
	return st.resolve(rawName)
}

// Cases returns every case in declaration order, materializing the type.
func (r *Registry) Cases(d Declarer) ([]*Value, error) {
	st, err := r.state(d)
	if err != nil {
		return nil, err
	}
	tbl, err := st.materialize()
	if err != nil {
		return nil, err
	}
	out := make([]*Value, len(tbl.values))
	copy(out, tbl.values)
	return out, nil
}

// From returns the case with exactly this backing kind and value.
func (r *Registry) From(d Declarer, backing any) (*Value, error) {
	scalar, err := ScalarOf(backing)
	if err != nil {
		return nil, err
	}
	st, err := r.state(d)
	if err != nil {
		return nil, err
	}
	tbl, err := st.materialize()
	if err != nil {
		return nil, err
	}
	name, ok := tbl.byBacking[scalar]
	if !ok {
		return nil, &CaseNotFoundError{Type: st.name, Backing: &scalar}
	}
	return tbl.byName[name], nil
}

// TryFrom is From without the not-found error: it returns nil, nil when no
// case matches or when backing is of an unsupported type. Materialization
// failures are still returned.
func (r *Registry) TryFrom(d Declarer, backing any) (*Value, error) {
	v, err := r.From(d, backing)
	if errors.Is(err, ErrCaseNotFound) || errors.Is(err, ErrInvalidBackingType) {
		return nil, nil
	}
	return v, err
}

func (r *Registry) state(d Declarer) (*typeState, error) {
	if d == nil {
		return nil, errors.New("enum: nil declarer")
	}
	key := reflect.TypeOf(d)

	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.types[key]; ok {
		return st, nil
	}
	st := newTypeState(key.String(), d.EnumCases())
	r.types[key] = st
	return st, nil
}

type table struct {
	values    []*Value
	byName    map[string]*Value
	byBacking map[Scalar]string
}

type typeState struct {
	name    string
	members []Member
	index   map[string]int // normalized name -> member index

	mu    sync.Mutex
	slots []*Value // values handed out before materialization
	err   error
	tbl   atomic.Pointer[table]
}

func newTypeState(name string, members []Member) *typeState {
	st := &typeState{
		name:    name,
		members: append([]Member(nil), members...),
		index:   make(map[string]int, len(members)),
		slots:   make([]*Value, len(members)),
	}
	for i, m := range st.members {
		key := naming.Normalize(m.Name)
		if _, taken := st.index[key]; !taken {
			st.index[key] = i
		}
	}
	return st
}

func (st *typeState) resolve(rawName string) (*Value, error) {
	idx, ok := st.index[naming.Normalize(rawName)]
	if !ok {
		return nil, &CaseNotFoundError{Type: st.name, Name: rawName}
	}
	if tbl := st.tbl.Load(); tbl != nil {
		return tbl.values[idx], nil
	}

	if m := st.members[idx]; m.Explicit() {
		st.mu.Lock()
		defer st.mu.Unlock()
		if tbl := st.tbl.Load(); tbl != nil {
			return tbl.values[idx], nil
		}
		if st.err != nil {
			return nil, st.err
		}
		if st.slots[idx] == nil {
			st.slots[idx] = &Value{name: m.Name, backing: m.Literal}
		}
		return st.slots[idx], nil
	}

	tbl, err := st.materialize()
	if err != nil {
		return nil, err
	}
	return tbl.values[idx], nil
}

func (st *typeState) materialize() (*table, error) {
	if tbl := st.tbl.Load(); tbl != nil {
		return tbl, nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if tbl := st.tbl.Load(); tbl != nil {
		return tbl, nil
	}
	if st.err != nil {
		return nil, st.err
	}

	literals := make([]Scalar, len(st.members))
	for i, m := range st.members {
		literals[i] = m.Literal
	}
	resolved := Sequence(literals)

	tbl := &table{
		values:    make([]*Value, len(st.members)),
		byName:    make(map[string]*Value, len(st.members)),
		byBacking: make(map[Scalar]string, len(st.members)),
	}
	for i, m := range st.members {
		if prev, dup := tbl.byBacking[resolved[i]]; dup {
			st.err = &DuplicateResolvedValueError{Type: st.name, First: prev, Second: m.Name, Value: resolved[i]}
			return nil, st.err
		}
		v := st.slots[i]
		if v == nil {
			v = &Value{name: m.Name, backing: resolved[i]}
		}
		tbl.values[i] = v
		tbl.byName[m.Name] = v
		tbl.byBacking[resolved[i]] = m.Name
	}

	st.tbl.Store(tbl)
	st.slots = nil
	return tbl, nil
}
