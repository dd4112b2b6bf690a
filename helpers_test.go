package table

import (
	"reflect"
	"testing"
)

// fakeProvider is the simplest ComponentProvider a test needs: a fixed
// map from id to (size, isTag), built once per test.
type fakeProvider struct {
	sizes map[EntityID]int
	tags  map[EntityID]bool
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{sizes: map[EntityID]int{}, tags: map[EntityID]bool{}}
}

func (p *fakeProvider) withData(id EntityID, size int) *fakeProvider {
	p.sizes[id] = size
	return p
}

func (p *fakeProvider) withTag(id EntityID) *fakeProvider {
	p.tags[id] = true
	return p
}

func (p *fakeProvider) GetComponent(w *World, stage *Stage, id EntityID) (ComponentDescriptor, ComponentKind) {
	if size, ok := p.sizes[id]; ok {
		return ComponentDescriptor{Size: size}, KindData
	}
	if p.tags[id] {
		return ComponentDescriptor{}, KindTag
	}
	return ComponentDescriptor{}, KindAbsent
}

var _ ComponentProvider = (*fakeProvider)(nil)

// fakeActivator records every activation edge it's told about, in order.
type fakeActivator struct {
	events []activationEvent
}

type activationEvent struct {
	query  Query
	tbl    *Table
	active bool
}

func (a *fakeActivator) ActivateTable(w *World, query Query, tbl *Table, active bool) {
	a.events = append(a.events, activationEvent{query: query, tbl: tbl, active: active})
}

var _ QueryActivator = (*fakeActivator)(nil)

// fakeRemover records every OnRemove notification it receives.
type fakeRemover struct {
	calls []removeCall
}

type removeCall struct {
	typ      Type
	startRow int
	count    int
}

func (r *fakeRemover) Notify(w *World, typ Type, tbl *Table, data *Data, startRow, count int) {
	r.calls = append(r.calls, removeCall{typ: typ, startRow: startRow, count: count})
}

var _ RemoveNotifier = (*fakeRemover)(nil)

// newTestWorld builds a World over an EntryIndex and the given provider,
// with an activator and remover wired in so tests can assert on them.
func newTestWorld(provider ComponentProvider) (*World, *EntryIndex, *fakeActivator, *fakeRemover) {
	idx := NewEntryIndex()
	act := &fakeActivator{}
	rem := &fakeRemover{}
	w := NewWorld(provider, idx, act, rem)
	return w, idx, act, rem
}

// posID/velID name two plain data components and tagID a tag, all past
// LastBuiltin; each test gives them their byte sizes (or tag status)
// through its own fakeProvider.
const (
	posID EntityID = LastBuiltin + 1
	velID EntityID = LastBuiltin + 2
	tagID EntityID = LastBuiltin + 3
)

func buildTable(t *testing.T, w *World, ids ...EntityID) *Table {
	t.Helper()
	typ := Type(append([]EntityID{}, ids...))
	sortType(typ)
	tbl := &Table{typ: typ}
	tbl.data = NewData(w, nil, tbl, typ)
	return tbl
}

func float64Size() int {
	var f float64
	return int(reflect.TypeOf(f).Size())
}
