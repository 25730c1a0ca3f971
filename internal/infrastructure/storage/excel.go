package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// excelBackend stores tables as sheets of a single xlsx workbook. Every
// replaceRows call rewrites one sheet and leaves its siblings untouched.
type excelBackend struct {
	path string
}

func (b *excelBackend) ensureTables(ctx context.Context, tables []Table) error {
	if _, err := os.Stat(b.path); err == nil {
		return nil
	}

	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create workbook dir: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	for _, t := range tables {
		if _, err := f.NewSheet(t.Sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", t.Sheet, err)
		}
		if err := writeSheet(f, t, nil); err != nil {
			return err
		}
	}

	// Seed metadata defaults on first creation.
	now := nowString()
	if err := writeSheet(f, metadataTable, defaultMetadata(now)); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	if err := f.SaveAs(b.path); err != nil {
		return fmt.Errorf("save workbook %s: %w", b.path, err)
	}
	return nil
}

func (b *excelBackend) readRows(ctx context.Context, t Table) ([][]string, error) {
	f, err := excelize.OpenFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", b.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(t.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", t.Sheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

func (b *excelBackend) replaceRows(ctx context.Context, t Table, rows [][]string) error {
	f, err := excelize.OpenFile(b.path)
	if err != nil {
		return fmt.Errorf("open workbook %s: %w", b.path, err)
	}
	defer f.Close()

	// Whole-sheet replace: drop and recreate, siblings stay intact.
	if err := f.DeleteSheet(t.Sheet); err != nil {
		return fmt.Errorf("drop sheet %s: %w", t.Sheet, err)
	}
	if _, err := f.NewSheet(t.Sheet); err != nil {
		return fmt.Errorf("recreate sheet %s: %w", t.Sheet, err)
	}

	if err := writeSheet(f, t, rows); err != nil {
		return err
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("save workbook %s: %w", b.path, err)
	}
	return nil
}

// writeSheet lays out header plus data rows and applies the workbook
// formatting conventions: bold centered header, wide text columns, an
// auto-filter spanning the used range.
func writeSheet(f *excelize.File, t Table, rows [][]string) error {
	header := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(t.Sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header %s: %w", t.Sheet, err)
	}

	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row coordinates: %w", err)
		}
		if err := f.SetSheetRow(t.Sheet, cell, &cells); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i+2, t.Sheet, err)
		}
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(t.Columns))
	if err != nil {
		return fmt.Errorf("column name: %w", err)
	}
	if err := f.SetCellStyle(t.Sheet, "A1", lastCol+"1", styleID); err != nil {
		return fmt.Errorf("apply header style %s: %w", t.Sheet, err)
	}

	for i, col := range t.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		width := 20.0
		if wideColumns[col] {
			width = 80.0
		}
		if err := f.SetColWidth(t.Sheet, name, name, width); err != nil {
			return fmt.Errorf("set width %s!%s: %w", t.Sheet, name, err)
		}
	}

	filterRef := fmt.Sprintf("A1:%s%d", lastCol, len(rows)+1)
	if err := f.AutoFilter(t.Sheet, filterRef, nil); err != nil {
		return fmt.Errorf("auto filter %s: %w", t.Sheet, err)
	}

	return nil
}
