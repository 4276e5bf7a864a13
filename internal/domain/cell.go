package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type CellKind int

const (
	CellText CellKind = iota
	CellNumber
)

// CellValue is a tagged text-or-number variant. Genuinely empty cells are
// never stored — a row simply has no entry for that column.
type CellValue struct {
	Kind CellKind
	Text string
	Num  float64
}

func TextCell(s string) CellValue { return CellValue{Kind: CellText, Text: s} }

func NumberCell(f float64) CellValue { return CellValue{Kind: CellNumber, Num: f} }

// CoerceCell turns a raw cell string into its natural type: finite numeric
// literals become numbers, everything else stays text. ParseFloat also
// accepts "Inf" and "NaN", but those have no JSON representation and would
// make the row unmarshalable, so they remain text.
func CoerceCell(s string) CellValue {
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return NumberCell(f)
	}
	return TextCell(s)
}

func (v CellValue) IsNumber() bool { return v.Kind == CellNumber }

func (v CellValue) String() string {
	if v.Kind == CellNumber {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return v.Text
}

func (v CellValue) MarshalJSON() ([]byte, error) {
	if v.Kind == CellNumber {
		return json.Marshal(v.Num)
	}
	return json.Marshal(v.Text)
}

func (v *CellValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case float64:
		*v = NumberCell(t)
	case string:
		*v = TextCell(t)
	default:
		return fmt.Errorf("cell value must be a string or a number, got %T", t)
	}
	return nil
}

// Row maps column names to cell values. Columns with empty cells are absent.
type Row map[string]CellValue
