package models

import "time"

// IssuerProfile is the stored company identity used to seed new
// quotation sessions. One record per installation.
type IssuerProfile struct {
	ID        int64       `json:"id" bson:"_id,omitempty" db:"id"`
	Issuer    Issuer      `json:"issuer" bson:"issuer"`
	Bank      BankDetails `json:"bank" bson:"bank"`
	Terms     []string    `json:"terms" bson:"terms"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at" db:"created_at"`
}
