package domain

import (
	"encoding/json"
	"time"
)

// Dataset is the parsed column/row payload of one spreadsheet. It is written
// once at ingestion time, never mutated, and removed only by the owning
// Upload's cascade delete.
type Dataset struct {
	ID      string   `json:"id"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// EstimatedSize is the byte length of the serialized columns+rows payload.
// This is the storage figure used for admin reporting and the parsed-data
// ceiling; it is an estimate, deliberately not reconciled with blob size.
func (d *Dataset) EstimatedSize() int64 {
	payload := struct {
		Columns []string `json:"columns"`
		Rows    []Row    `json:"rows"`
	}{d.Columns, d.Rows}
	b, err := json.Marshal(payload)
	if err != nil {
		return 0
	}
	return int64(len(b))
}

// Upload is the metadata record for one ingested spreadsheet. The payload
// lives in a separate Dataset record so that listings stay cheap.
type Upload struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"user_id"`
	OriginalName string    `json:"originalname"`
	StoredName   string    `json:"filename"`
	DatasetID    string    `json:"-"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
