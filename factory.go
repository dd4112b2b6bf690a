package table

// factory implements the factory pattern for constructing the table
// core's value types, mirroring the teacher's own factory.go.
type factory struct{}

// Factory is the global factory instance.
var Factory factory

// NewSchema returns a new, empty Schema.
func (f factory) NewSchema() *Schema {
	return NewSchema()
}

// NewEntryIndex returns a new, empty EntryIndex.
func (f factory) NewEntryIndex() *EntryIndex {
	return NewEntryIndex()
}

// NewTableBuilder returns a new TableBuilder.
func (f factory) NewTableBuilder() *TableBuilder {
	return NewTableBuilder()
}
