package storage

import "context"

// memoryBackend keeps tables in process memory. It backs the contract
// test suite and dry-run tooling; semantics mirror the durable backends
// (whole-table replace, header excluded).
type memoryBackend struct {
	tables map[string][][]string
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{tables: map[string][][]string{}}
}

func (b *memoryBackend) ensureTables(ctx context.Context, tables []Table) error {
	for _, t := range tables {
		if _, ok := b.tables[t.Sheet]; !ok {
			b.tables[t.Sheet] = nil
			if t.Sheet == metadataTable.Sheet {
				b.tables[t.Sheet] = defaultMetadata(nowString())
			}
		}
	}
	return nil
}

func (b *memoryBackend) readRows(ctx context.Context, t Table) ([][]string, error) {
	stored := b.tables[t.Sheet]
	rows := make([][]string, len(stored))
	for i, row := range stored {
		rows[i] = append([]string(nil), row...)
	}
	return rows, nil
}

func (b *memoryBackend) replaceRows(ctx context.Context, t Table, rows [][]string) error {
	replaced := make([][]string, len(rows))
	for i, row := range rows {
		replaced[i] = append([]string(nil), row...)
	}
	b.tables[t.Sheet] = replaced
	return nil
}
