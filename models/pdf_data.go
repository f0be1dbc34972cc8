package models

// QuotationPDFData feeds the HTML template for both the export
// snapshot and the print-ready view.
type QuotationPDFData struct {
	Quote        *Quotation
	ShowEditing  bool // edit-pencil affordances
	ShowAddItem  bool // "add line item" control
	ShowDeleteUI bool // per-row delete column
}
