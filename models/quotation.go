package models

// Issuer is the business identity printed in the document header.
type Issuer struct {
	Name    string `json:"name" bson:"name" db:"name"`
	Address string `json:"address" bson:"address" db:"address"`
	Mobile  string `json:"mobile" bson:"mobile" db:"mobile"`
	GSTIN   string `json:"gstin" bson:"gstin" db:"gstin"`
	PAN     string `json:"pan" bson:"pan" db:"pan"`
	Email   string `json:"email" bson:"email" db:"email"`
	Website string `json:"website" bson:"website" db:"website"`
}

// Party is a bill-to / ship-to customer record. Ship-to carries no
// mobile or place of supply; those fields stay empty for it.
type Party struct {
	Name          string `json:"name" bson:"name" db:"name"`
	Address       string `json:"address" bson:"address" db:"address"`
	Mobile        string `json:"mobile,omitempty" bson:"mobile,omitempty" db:"mobile"`
	PlaceOfSupply string `json:"place_of_supply,omitempty" bson:"place_of_supply,omitempty" db:"place_of_supply"`
}

// LineItem fields are all display text. Qty may carry a unit suffix
// ("1 PCS"), TaxLabel may embed a percentage, Amount is a decimal
// string that may contain thousands separators.
type LineItem struct {
	Description string `json:"description" bson:"description" db:"description"`
	Qty         string `json:"qty" bson:"qty" db:"qty"`
	TaxLabel    string `json:"tax" bson:"tax" db:"tax"`
	Amount      string `json:"amount" bson:"amount" db:"amount"`
}

// Summary holds the derived totals as formatted display text. The rate
// labels double as the source of the applied rates: the first number
// found in each label is the percentage used in derivation.
type Summary struct {
	TaxableAmount string `json:"taxable_amount" bson:"taxable_amount" db:"taxable_amount"`
	CGSTLabel     string `json:"cgst_label" bson:"cgst_label" db:"cgst_label"`
	CGST          string `json:"cgst" bson:"cgst" db:"cgst"`
	SGSTLabel     string `json:"sgst_label" bson:"sgst_label" db:"sgst_label"`
	SGST          string `json:"sgst" bson:"sgst" db:"sgst"`
	Total         string `json:"total" bson:"total" db:"total"`
	AmountInWords string `json:"amount_in_words" bson:"amount_in_words" db:"amount_in_words"`
}

type BankDetails struct {
	AccountName string `json:"account_name" bson:"account_name" db:"account_name"`
	IFSC        string `json:"ifsc" bson:"ifsc" db:"ifsc"`
	AccountNo   string `json:"account_no" bson:"account_no" db:"account_no"`
	BankName    string `json:"bank_name" bson:"bank_name" db:"bank_name"`
}

// Quotation is the root aggregate of one document. Every string field
// accepts arbitrary text; only Summary is derived.
type Quotation struct {
	QuoteNo    string      `json:"quote_no" bson:"quote_no" db:"quote_no"`
	Date       string      `json:"date" bson:"date" db:"date"`
	ExpiryDate string      `json:"expiry_date" bson:"expiry_date" db:"expiry_date"`
	Issuer     Issuer      `json:"issuer" bson:"issuer"`
	BillTo     Party       `json:"bill_to" bson:"bill_to"`
	ShipTo     Party       `json:"ship_to" bson:"ship_to"`
	Items      []LineItem  `json:"items" bson:"items"`
	Summary    Summary     `json:"summary" bson:"summary"`
	Bank       BankDetails `json:"bank" bson:"bank"`
	Terms      []string    `json:"terms" bson:"terms"`
}

// Clone returns an independent copy, safe to read while the original
// keeps being edited.
func (q *Quotation) Clone() *Quotation {
	out := *q
	out.Items = append([]LineItem(nil), q.Items...)
	out.Terms = append([]string(nil), q.Terms...)
	return &out
}
