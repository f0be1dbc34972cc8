package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"saisolaredge/models"
	"saisolaredge/quotation"
	"saisolaredge/repository"
)

func newTestQuoteHandler() *QuoteHandler {
	return &QuoteHandler{
		Sessions: repository.NewSessionStore(),
		Profiles: repository.NewMemoryProfileRepo(),
	}
}

func openSession(t *testing.T, h *QuoteHandler) (string, *models.Quotation) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/quotation", nil)
	rec := httptest.NewRecorder()
	h.OpenQuotation(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("OpenQuotation status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var resp sessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding open response: %v", err)
	}
	return resp.SessionID, resp.Document
}

func edit(t *testing.T, h *QuoteHandler, id, body string) *models.Quotation {
	t.Helper()

	req := httptest.NewRequest(http.MethodPatch, "/quotation/"+id, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.EditQuotation(rec, req, id)

	if rec.Code != http.StatusOK {
		t.Fatalf("EditQuotation status = %d, body %s", rec.Code, rec.Body.String())
	}

	var doc models.Quotation
	if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
		t.Fatalf("decoding edit response: %v", err)
	}
	return &doc
}

func TestOpenQuotation_SeedsDefaultDocument(t *testing.T) {
	h := newTestQuoteHandler()
	id, doc := openSession(t, h)

	if id == "" {
		t.Fatal("empty session id")
	}
	if doc.Issuer.Name != "SAI SOLAREDGE SOLUTIONS" {
		t.Errorf("issuer = %q, want seed issuer", doc.Issuer.Name)
	}
	if len(doc.Items) != 1 || doc.Items[0].Amount != "368300" {
		t.Errorf("items = %+v, want the single seed item", doc.Items)
	}
}

func TestOpenQuotation_SeedsFromStoredProfile(t *testing.T) {
	h := newTestQuoteHandler()
	err := h.Profiles.SaveProfile(&models.IssuerProfile{
		Issuer: models.Issuer{Name: "SUNBEAM ENERGY PVT LTD", GSTIN: "36TEST0000A1Z5"},
		Bank:   models.BankDetails{AccountName: "Sunbeam Energy", IFSC: "HDFC0000001"},
		Terms:  []string{"Quote valid for 15 days"},
	})
	if err != nil {
		t.Fatal(err)
	}

	_, doc := openSession(t, h)
	if doc.Issuer.Name != "SUNBEAM ENERGY PVT LTD" {
		t.Errorf("issuer = %q, want profile issuer", doc.Issuer.Name)
	}
	if doc.Bank.IFSC != "HDFC0000001" {
		t.Errorf("bank ifsc = %q, want profile bank", doc.Bank.IFSC)
	}
	if len(doc.Terms) != 1 || doc.Terms[0] != "Quote valid for 15 days" {
		t.Errorf("terms = %+v, want profile terms", doc.Terms)
	}
	// customer and items still come from the example seed
	if doc.BillTo.Name != "Ashok Kumar" {
		t.Errorf("bill-to = %q", doc.BillTo.Name)
	}
}

func TestEditQuotation_AmountEditDerivesSummary(t *testing.T) {
	h := newTestQuoteHandler()
	id, _ := openSession(t, h)

	doc := edit(t, h, id, `{"op":"set_item","index":0,"field":"amount","value":"100000"}`)
	if doc.Summary.Total != "1,00,000" {
		t.Errorf("total = %q, want %q", doc.Summary.Total, "1,00,000")
	}
	if doc.Summary.AmountInWords != "One Lakh Rupees Only" {
		t.Errorf("words = %q", doc.Summary.AmountInWords)
	}
}

func TestEditQuotation_AddAndRemoveItem(t *testing.T) {
	h := newTestQuoteHandler()
	id, _ := openSession(t, h)

	doc := edit(t, h, id, `{"op":"add_item"}`)
	if len(doc.Items) != 2 {
		t.Fatalf("items after add = %d, want 2", len(doc.Items))
	}

	doc = edit(t, h, id, `{"op":"remove_item","index":1}`)
	if len(doc.Items) != 1 {
		t.Fatalf("items after remove = %d, want 1", len(doc.Items))
	}

	// out-of-range removal is a no-op, not an error
	doc = edit(t, h, id, `{"op":"remove_item","index":5}`)
	if len(doc.Items) != 1 {
		t.Errorf("items after out-of-range remove = %d, want 1", len(doc.Items))
	}
}

func TestEditQuotation_UnknownOp(t *testing.T) {
	h := newTestQuoteHandler()
	id, _ := openSession(t, h)

	req := httptest.NewRequest(http.MethodPatch, "/quotation/"+id, strings.NewReader(`{"op":"reorder"}`))
	rec := httptest.NewRecorder()
	h.EditQuotation(rec, req, id)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown op status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetQuotation_UnknownSession(t *testing.T) {
	h := newTestQuoteHandler()

	req := httptest.NewRequest(http.MethodGet, "/quotation/nope", nil)
	rec := httptest.NewRecorder()
	h.GetQuotation(rec, req, "nope")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCloseQuotation_DiscardsDocument(t *testing.T) {
	h := newTestQuoteHandler()
	id, _ := openSession(t, h)

	req := httptest.NewRequest(http.MethodDelete, "/quotation/"+id, nil)
	rec := httptest.NewRecorder()
	h.CloseQuotation(rec, req, id)
	if rec.Code != http.StatusOK {
		t.Fatalf("close status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/quotation/"+id, nil)
	rec = httptest.NewRecorder()
	h.GetQuotation(rec, req, id)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after close status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestExportPDF_BusyAndFailureResponses(t *testing.T) {
	sessions := repository.NewSessionStore()
	sess := quotation.NewSession(nil)
	sessions.Put(sess)

	renderErr := errors.New("chrome crashed")
	h := &PDFHandler{
		Sessions: sessions,
		Archive:  repository.NewMemoryArchiveRepo(),
		Exporter: &quotation.Exporter{Render: func(data *models.QuotationPDFData) ([]byte, error) {
			return nil, renderErr
		}},
		SavePath: t.TempDir(),
	}

	req := httptest.NewRequest(http.MethodPost, "/quotation/"+sess.ID+"/pdf", nil)
	rec := httptest.NewRecorder()
	h.ExportPDF(rec, req, sess.ID)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("failed export status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !sess.ShowEditing {
		t.Error("affordances not restored after failed export")
	}

	// success path writes the file and records the export
	h.Exporter.Render = func(data *models.QuotationPDFData) ([]byte, error) {
		return []byte("%PDF-1.4"), nil
	}
	rec = httptest.NewRecorder()
	h.ExportPDF(rec, req, sess.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d, body %s", rec.Code, rec.Body.String())
	}

	records, err := h.Archive.ListExports()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Filename != "Quotation_100117.pdf" {
		t.Errorf("archive records = %+v", records)
	}
}
