package table

import (
	"reflect"
	"unsafe"
)

// Accessor is a typed view over one component's column, letting a host
// read and write component values without ever seeing a raw byte
// slice. It is the concrete shape of table.Accessor[T] the teacher's
// componentaccessible.go embeds directly.
type Accessor[T any] struct {
	id EntityID
}

// FactoryNewAccessor returns an Accessor bound to et's id.
func FactoryNewAccessor[T any](et ElementType) Accessor[T] {
	return Accessor[T]{id: et.ID()}
}

// Get returns a pointer into tbl's committed column storage for row.
// The pointer is only valid until the next structural mutation on
// tbl — a grow can reallocate the backing buffer (see World.ShouldResolve).
func (a Accessor[T]) Get(row int, tbl *Table) *T {
	col, ok := tbl.Column(a.id)
	if !ok {
		fail("accessor.Get", "component missing from table")
	}
	bytes := col.row("accessor.Get", row)
	return (*T)(unsafe.Pointer(&bytes[0]))
}

// Check reports whether tbl carries this accessor's component at all
// (it may still be a tag with no storage, in which case Get panics).
func (a Accessor[T]) Check(tbl *Table) bool {
	return tbl.Contains(a.id)
}

// SetRawValue writes value's bytes into row of the column backing id,
// failing if value's reified size doesn't match the column's element
// size. It is the byte-buffer equivalent of the teacher's entity.go
// AddComponentWithValue, which walked Table().Rows() with
// reflect.Value.Index(...).Set(...) — that shape assumed each column
// was already a typed Go slice, which doesn't fit the packed
// byte-buffer Column this package uses (spec.md §9 "untyped column
// storage"). Same capability, expressed as one reflect-sized memcpy.
func SetRawValue(tbl *Table, id EntityID, row int, value any) error {
	col, ok := tbl.Column(id)
	if !ok {
		return InternalError{Op: "SetRawValue", Reason: "component has no storage on this table"}
	}
	rv := reflect.ValueOf(value)
	if int(rv.Type().Size()) != col.ElemSize {
		return InternalError{Op: "SetRawValue", Reason: "value size does not match column element size"}
	}
	boxed := reflect.New(rv.Type())
	boxed.Elem().Set(rv)
	dst := col.row("SetRawValue", row)
	src := unsafe.Slice((*byte)(boxed.UnsafePointer()), col.ElemSize)
	copy(dst, src)
	return nil
}

// CopyRow byte-copies every data-bearing component dstTbl and srcTbl
// both carry from srcRow of srcTbl into dstRow of dstTbl. It is the
// core primitive behind a host's entity-transfer step (the teacher's
// entity.go/storage.go TransferEntries), which this package expresses
// as a plain memcpy per shared column rather than a method on Table
// itself, since Table has no notion of "the other table" to transfer
// into.
func CopyRow(dstTbl, srcTbl *Table, dstRow, srcRow int) {
	for _, id := range srcTbl.typ {
		srcCol, ok := srcTbl.Column(id)
		if !ok {
			continue
		}
		dstCol, ok := dstTbl.Column(id)
		if !ok {
			continue
		}
		copy(dstCol.row("CopyRow", dstRow), srcCol.row("CopyRow", srcRow))
	}
}
