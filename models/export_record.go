package models

import "time"

// ExportRecord is the archive entry written after a successful PDF
// export. The live document itself is never persisted.
type ExportRecord struct {
	ID         int64     `json:"id" bson:"_id,omitempty" db:"id"`
	QuoteNo    string    `json:"quote_no" bson:"quote_no" db:"quote_no"`
	Customer   string    `json:"customer" bson:"customer" db:"customer"`
	Total      string    `json:"total" bson:"total" db:"total"`
	Filename   string    `json:"filename" bson:"filename" db:"filename"`
	StorageURL string    `json:"storage_url,omitempty" bson:"storage_url,omitempty" db:"storage_url"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
