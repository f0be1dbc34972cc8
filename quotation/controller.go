package quotation

import (
	"saisolaredge/models"
	"saisolaredge/utils"
)

// Controller mediates all edits to one in-memory quotation document.
// Every setter is total over arbitrary text: unknown field names and
// out-of-range indexes are silent no-ops. Summary recomputation runs
// only after the mutations it actually depends on (line-item amounts,
// item add/remove, tax-rate label edits), so a manual write to another
// summary field survives until the next such trigger.
type Controller struct {
	doc *models.Quotation
}

func NewController(doc *models.Quotation) *Controller {
	if doc == nil {
		doc = models.DefaultQuotation()
	}
	return &Controller{doc: doc}
}

func (c *Controller) Document() *models.Quotation {
	return c.doc
}

func (c *Controller) SetHeaderField(field, value string) {
	switch field {
	case "quote_no":
		c.doc.QuoteNo = value
	case "date":
		c.doc.Date = value
	case "expiry_date":
		c.doc.ExpiryDate = value
	}
}

func (c *Controller) SetIssuerField(field, value string) {
	switch field {
	case "name":
		c.doc.Issuer.Name = value
	case "address":
		c.doc.Issuer.Address = value
	case "mobile":
		c.doc.Issuer.Mobile = value
	case "gstin":
		c.doc.Issuer.GSTIN = value
	case "pan":
		c.doc.Issuer.PAN = value
	case "email":
		c.doc.Issuer.Email = value
	case "website":
		c.doc.Issuer.Website = value
	}
}

func (c *Controller) SetBillToField(field, value string) {
	switch field {
	case "name":
		c.doc.BillTo.Name = value
	case "address":
		c.doc.BillTo.Address = value
	case "mobile":
		c.doc.BillTo.Mobile = value
	case "place_of_supply":
		c.doc.BillTo.PlaceOfSupply = value
	}
}

// SetShipToField exposes only name and address; shipping carries no
// mobile or tax jurisdiction.
func (c *Controller) SetShipToField(field, value string) {
	switch field {
	case "name":
		c.doc.ShipTo.Name = value
	case "address":
		c.doc.ShipTo.Address = value
	}
}

func (c *Controller) SetBankField(field, value string) {
	switch field {
	case "account_name":
		c.doc.Bank.AccountName = value
	case "ifsc":
		c.doc.Bank.IFSC = value
	case "account_no":
		c.doc.Bank.AccountNo = value
	case "bank_name":
		c.doc.Bank.BankName = value
	}
}

// SetSummaryField writes a summary field directly. Editing either rate
// label re-runs derivation with the rate extracted from the new label
// text; manual writes to the computed fields persist until the next
// recompute trigger fires.
func (c *Controller) SetSummaryField(field, value string) {
	switch field {
	case "taxable_amount":
		c.doc.Summary.TaxableAmount = value
	case "cgst_label":
		c.doc.Summary.CGSTLabel = value
		c.Recompute()
	case "cgst":
		c.doc.Summary.CGST = value
	case "sgst_label":
		c.doc.Summary.SGSTLabel = value
		c.Recompute()
	case "sgst":
		c.doc.Summary.SGST = value
	case "total":
		c.doc.Summary.Total = value
	case "amount_in_words":
		c.doc.Summary.AmountInWords = value
	}
}

func (c *Controller) SetTerm(index int, text string) {
	if index < 0 || index >= len(c.doc.Terms) {
		return
	}
	c.doc.Terms[index] = text
}

// AddLineItem appends an empty item. Ordering is append-only.
func (c *Controller) AddLineItem() {
	c.doc.Items = append(c.doc.Items, models.LineItem{
		Description: "",
		Qty:         "1",
		TaxLabel:    "18",
		Amount:      "0",
	})
	c.Recompute()
}

// RemoveLineItem is a no-op for out-of-range indexes; otherwise it
// removes the item and shifts the rest down, preserving order.
func (c *Controller) RemoveLineItem(index int) {
	if index < 0 || index >= len(c.doc.Items) {
		return
	}
	c.doc.Items = append(c.doc.Items[:index], c.doc.Items[index+1:]...)
	c.Recompute()
}

func (c *Controller) SetLineItemField(index int, field, value string) {
	if index < 0 || index >= len(c.doc.Items) {
		return
	}
	switch field {
	case "description":
		c.doc.Items[index].Description = value
	case "qty":
		c.doc.Items[index].Qty = value
	case "tax":
		c.doc.Items[index].TaxLabel = value
	case "amount":
		c.doc.Items[index].Amount = value
		c.Recompute()
	}
}

// Recompute overwrites the summary's derived fields from the line
// items and the rates embedded in the two labels. It is idempotent and
// touches nothing but the summary.
func (c *Controller) Recompute() {
	cgstRate := RateFromLabel(c.doc.Summary.CGSTLabel)
	sgstRate := RateFromLabel(c.doc.Summary.SGSTLabel)

	d := Derive(c.doc.Items, cgstRate, sgstRate)

	c.doc.Summary.TaxableAmount = utils.FormatINR(d.Taxable)
	c.doc.Summary.CGST = utils.FormatINR(d.CGST)
	c.doc.Summary.SGST = utils.FormatINR(d.SGST)
	c.doc.Summary.Total = utils.FormatINRWhole(d.Total)
	c.doc.Summary.AmountInWords = utils.AmountInWordsOrOverflow(d.Total)
}
