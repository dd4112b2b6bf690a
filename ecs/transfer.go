package ecs

import "github.com/TheBitDrifter/table"

// transferRow moves one entity from srcTbl to dstTbl: insert a fresh
// row in dstTbl, byte-copy every component the two tables share, point
// the entity index at the new row, then delete the old row from
// srcTbl. srcWorld and dstWorld are the same *table.World for an
// intra-storage move (AddComponent, RemoveComponent) and distinct ones
// for a cross-storage move (Storage.TransferEntities).
func transferRow(srcWorld, dstWorld *table.World, srcTbl, dstTbl *table.Table, id table.EntityID, srcRow int) error {
	dstData := table.GetData(dstWorld, nil, dstTbl)
	dstRow, err := table.Insert(dstWorld, dstTbl, dstData, id)
	if err != nil {
		return err
	}
	table.CopyRow(dstTbl, srcTbl, dstRow, srcRow)
	globalEntryIndex.SetTable(id, table.Record{Type: dstTbl.Type(), Row: dstRow + 1}, dstTbl)

	srcData := table.GetData(srcWorld, nil, srcTbl)
	return table.Delete(srcWorld, nil, srcTbl, srcData, srcRow)
}
