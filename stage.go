package table

import "strconv"

// Stage is a per-execution-context shadow of the world, used only
// while World.InProgress is true (spec.md §3, §5): a map from Type to
// shadow Data, copy-on-write per table, plus an entity-index overlay
// that shadows the main index for any entity whose row currently lives
// in a shadow Data rather than a committed one.
type Stage struct {
	dataStage map[string]*Data
	overlay   map[EntityID]Record
	main      EntityIndexer
}

// NewStage returns an empty Stage overlaying main, the world's
// committed entity index.
func NewStage(main EntityIndexer) *Stage {
	return &Stage{
		dataStage: make(map[string]*Data),
		overlay:   make(map[EntityID]Record),
		main:      main,
	}
}

// Get implements EntityIndexer: an overlay entry shadows the main
// index's record for the same id.
func (s *Stage) Get(id EntityID) (Record, bool) {
	if rec, ok := s.overlay[id]; ok {
		return rec, true
	}
	if s.main != nil {
		return s.main.Get(id)
	}
	return Record{}, false
}

// Set implements EntityIndexer by writing only into the overlay,
// never into the main index — committing a stage back is the job of
// the higher-level commit phase described in spec.md §5, external to
// this core.
func (s *Stage) Set(id EntityID, rec Record) {
	s.overlay[id] = rec
}

var _ EntityIndexer = (*Stage)(nil)

// typeKey returns a canonical, comparable map key for a Type. Type is
// a slice and so not itself usable as a map key; each id is rendered
// in decimal and terminated by a comma, so distinct Types can never
// produce the same key.
func typeKey(typ Type) string {
	buf := make([]byte, 0, len(typ)*21)
	for _, id := range typ {
		buf = strconv.AppendUint(buf, uint64(id), 10)
		buf = append(buf, ',')
	}
	return string(buf)
}

// entityIndexerFor resolves which EntityIndexer a mutation op should
// read and write through: the stage overlay when one is supplied,
// otherwise the world's main index. Every mutation op is parameterized
// by an explicit (possibly nil) stage rather than reaching into a
// global, per spec.md §9's "no hidden globals" instruction.
func entityIndexerFor(w *World, stage *Stage, op string) EntityIndexer {
	if stage != nil {
		return stage
	}
	return w.entityIndexer(op)
}

// GetData is table_get_data / get_data (spec.md §4.2): the pivot that
// keeps in-progress mutations isolated from whatever is iterating the
// committed store. Outside in-progress, every mutation targets tbl's
// committed Data directly. Inside in-progress, it resolves (or lazily
// creates) this stage's shadow Data for tbl's Type.
func GetData(w *World, stage *Stage, tbl *Table) *Data {
	if !w.InProgress {
		return tbl.data
	}
	if stage == nil {
		fail("get_data", "in-progress mutation requires a stage")
	}
	key := typeKey(tbl.typ)
	if data, ok := stage.dataStage[key]; ok {
		return data
	}
	data := NewData(w, stage, nil, tbl.typ)
	stage.dataStage[key] = data
	return data
}
