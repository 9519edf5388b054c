package cql

import "fmt"

// BatchType selects the batch mode.
type BatchType int

const (
	BatchLogged BatchType = iota
	BatchUnlogged
	BatchCounter
)

// BeginBatch is the BEGIN BATCH prefix carried by INSERT, UPDATE and DELETE
// statements inside a batch.
type BeginBatch struct {
	Type      BatchType
	Timestamp *uint64
}

// String renders with a trailing space so the wrapped statement can be
// appended directly.
func (b BeginBatch) String() string {
	modifier := ""
	switch b.Type {
	case BatchUnlogged:
		modifier = "UNLOGGED "
	case BatchCounter:
		modifier = "COUNTER "
	}
	if b.Timestamp != nil {
		return fmt.Sprintf("BEGIN %sBATCH USING TIMESTAMP %d ", modifier, *b.Timestamp)
	}
	return fmt.Sprintf("BEGIN %sBATCH ", modifier)
}

func beginBatchPrefix(b *BeginBatch) string {
	if b == nil {
		return ""
	}
	return b.String()
}
