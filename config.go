package table

// Config holds package-level defaults, mirroring the teacher's
// config.go. A host that doesn't care about per-table events can build
// every table with Config.TableEvents instead of threading its own
// through every call site.
var Config config

type config struct {
	TableEvents TableEvents
}

// SetTableEvents installs the default TableEvents new tables pick up
// when a builder's WithEvents is never called.
func (c *config) SetTableEvents(te TableEvents) {
	c.TableEvents = te
}
