package upload

import (
	"bytes"
	"fmt"

	"sheetstash/internal/domain"

	"github.com/xuri/excelize/v2"
)

// ParseSpreadsheet reads the first sheet of an xlsx/xls workbook into a
// Dataset. Row 1 is the column-name header; every later row becomes one row
// record keyed by those names. Numeric literals are coerced to numbers and
// empty cells are omitted from the row map entirely.
//
// maxBytes bounds the serialized columns+rows payload. This is a tighter
// ceiling than the raw file-size check because spreadsheet containers can
// expand significantly on parse.
func ParseSpreadsheet(data []byte, maxBytes int64) (*domain.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnparseableFile
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyDataset
	}

	rawRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, ErrUnparseableFile
	}
	if len(rawRows) == 0 {
		return nil, ErrEmptyDataset
	}

	columns := headerColumns(rawRows[0])
	if len(columns) == 0 {
		return nil, ErrEmptyDataset
	}

	rows := make([]domain.Row, 0, len(rawRows)-1)
	for _, raw := range rawRows[1:] {
		row := make(domain.Row, len(columns))
		for i, cell := range raw {
			if i >= len(columns) || cell == "" {
				continue
			}
			row[columns[i]] = domain.CoerceCell(cell)
		}
		// Fully blank rows carry no data and are dropped.
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &domain.Dataset{Columns: columns, Rows: rows}
	if ds.EstimatedSize() > maxBytes {
		return nil, ErrDatasetTooLarge
	}
	return ds, nil
}

// headerColumns trims trailing empty header cells and keeps column order.
// Interior empty cells are named __EMPTY and duplicate names get a _<n>
// suffix, so every column has a distinct row-map key and no cell can shadow
// another.
func headerColumns(header []string) []string {
	end := len(header)
	for end > 0 && header[end-1] == "" {
		end--
	}
	columns := make([]string, 0, end)
	seen := make(map[string]int, end)
	for _, name := range header[:end] {
		if name == "" {
			name = "__EMPTY"
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n)
		} else {
			seen[name] = 1
		}
		columns = append(columns, name)
	}
	return columns
}
