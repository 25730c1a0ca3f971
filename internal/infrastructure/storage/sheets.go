package storage

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	wideColumnPixels    = 400
	defaultColumnPixels = 150
)

// sheetsBackend stores tables as sheets of one remote Google
// spreadsheet. replaceRows clears every data row below the header and
// appends the new rows in bulk.
type sheetsBackend struct {
	svc           *sheets.Service
	spreadsheetID string
}

func newSheetsBackend(ctx context.Context, credentialsPath, spreadsheetID string) (*sheetsBackend, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to sheets api: %w", err)
	}
	return &sheetsBackend{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (b *sheetsBackend) ensureTables(ctx context.Context, tables []Table) error {
	doc, err := b.svc.Spreadsheets.Get(b.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet: %w", err)
	}

	existing := map[string]int64{}
	for _, sheet := range doc.Sheets {
		existing[sheet.Properties.Title] = sheet.Properties.SheetId
	}

	metadataCreated := false
	for _, t := range tables {
		if _, ok := existing[t.Sheet]; ok {
			continue
		}
		if err := b.createSheet(ctx, t); err != nil {
			return err
		}
		if t.Sheet == metadataTable.Sheet {
			metadataCreated = true
		}
	}

	if metadataCreated {
		if err := b.replaceRows(ctx, metadataTable, defaultMetadata(nowString())); err != nil {
			return fmt.Errorf("seed metadata: %w", err)
		}
	}
	return nil
}

// createSheet adds the named sheet, writes its header row and applies
// the shared formatting conventions (bold centered header, ~400px text
// columns, ~150px otherwise).
func (b *sheetsBackend) createSheet(ctx context.Context, t Table) error {
	resp, err := b.svc.Spreadsheets.BatchUpdate(b.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: t.Sheet,
					GridProperties: &sheets.GridProperties{
						RowCount:    1000,
						ColumnCount: 26,
					},
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("add sheet %s: %w", t.Sheet, err)
	}
	sheetID := resp.Replies[0].AddSheet.Properties.SheetId

	header := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	_, err = b.svc.Spreadsheets.Values.Update(b.spreadsheetID, quoteRange(t.Sheet, "A1"), &sheets.ValueRange{
		Values: [][]any{header},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write header %s: %w", t.Sheet, err)
	}

	requests := []*sheets.Request{{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: &sheets.GridRange{
				SheetId:          sheetID,
				StartRowIndex:    0,
				EndRowIndex:      1,
				StartColumnIndex: 0,
				EndColumnIndex:   int64(len(t.Columns)),
			},
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					TextFormat:          &sheets.TextFormat{Bold: true},
					HorizontalAlignment: "CENTER",
				},
			},
			Fields: "userEnteredFormat(textFormat,horizontalAlignment)",
		},
	}}

	for i, col := range t.Columns {
		pixels := int64(defaultColumnPixels)
		if wideColumns[col] {
			pixels = wideColumnPixels
		}
		requests = append(requests, &sheets.Request{
			UpdateDimensionProperties: &sheets.UpdateDimensionPropertiesRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "COLUMNS",
					StartIndex: int64(i),
					EndIndex:   int64(i + 1),
				},
				Properties: &sheets.DimensionProperties{PixelSize: pixels},
				Fields:     "pixelSize",
			},
		})
	}

	_, err = b.svc.Spreadsheets.BatchUpdate(b.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("format sheet %s: %w", t.Sheet, err)
	}
	return nil
}

func (b *sheetsBackend) readRows(ctx context.Context, t Table) ([][]string, error) {
	resp, err := b.svc.Spreadsheets.Values.Get(b.spreadsheetID, quoteRange(t.Sheet, "A2:Z")).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", t.Sheet, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, v := range raw {
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (b *sheetsBackend) replaceRows(ctx context.Context, t Table, rows [][]string) error {
	_, err := b.svc.Spreadsheets.Values.Clear(b.spreadsheetID, quoteRange(t.Sheet, "A2:Z"), &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear sheet %s: %w", t.Sheet, err)
	}

	if len(rows) == 0 {
		return nil
	}

	values := make([][]any, len(rows))
	for i, row := range rows {
		padded := pad(row, t)
		cells := make([]any, len(padded))
		for j, v := range padded {
			cells[j] = v
		}
		values[i] = cells
	}

	_, err = b.svc.Spreadsheets.Values.Append(b.spreadsheetID, quoteRange(t.Sheet, "A1"), &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append rows %s: %w", t.Sheet, err)
	}
	return nil
}

func quoteRange(sheet, ref string) string {
	return fmt.Sprintf("'%s'!%s", sheet, ref)
}
