package handlers

import (
	"encoding/json"
	"net/http"

	"saisolaredge/models"
	"saisolaredge/quotation"
	"saisolaredge/repository"
	"saisolaredge/utils"
)

type QuoteHandler struct {
	Sessions *repository.SessionStore
	Profiles repository.ProfileRepository
}

// EditRequest is one field mutation. Section routes the value to the
// right setter; index is used for line items and terms.
type EditRequest struct {
	Op      string `json:"op"` // set | set_item | add_item | remove_item | set_term
	Section string `json:"section,omitempty"`
	Field   string `json:"field,omitempty"`
	Index   int    `json:"index,omitempty"`
	Value   string `json:"value,omitempty"`
}

type sessionResponse struct {
	SessionID string            `json:"session_id"`
	Document  *models.Quotation `json:"document"`
}

// OpenQuotation creates a session seeded with the stored issuer
// profile when one exists, otherwise the built-in example document.
func (h *QuoteHandler) OpenQuotation(w http.ResponseWriter, r *http.Request) {
	doc := models.DefaultQuotation()

	if h.Profiles != nil {
		profile, err := h.Profiles.GetProfile()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if profile != nil {
			doc.Issuer = profile.Issuer
			doc.Bank = profile.Bank
			if len(profile.Terms) > 0 {
				doc.Terms = profile.Terms
			}
		}
	}

	sess := quotation.NewSession(doc)
	h.Sessions.Put(sess)

	writeJSON(w, http.StatusCreated, sessionResponse{
		SessionID: sess.ID,
		Document:  sess.Snapshot(),
	})
}

func (h *QuoteHandler) GetQuotation(w http.ResponseWriter, r *http.Request, id string) {
	sess := h.Sessions.Get(id)
	if sess == nil {
		http.Error(w, "quotation session not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// EditQuotation applies one mutation and returns the updated document.
// Setters never fail on content: unknown sections, fields, and indexes
// are silent no-ops, matching the editing model.
func (h *QuoteHandler) EditQuotation(w http.ResponseWriter, r *http.Request, id string) {
	sess := h.Sessions.Get(id)
	if sess == nil {
		http.Error(w, "quotation session not found", http.StatusNotFound)
		return
	}

	var req EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var apply func(*quotation.Controller)
	switch req.Op {
	case "set":
		apply = func(c *quotation.Controller) {
			switch req.Section {
			case "header":
				c.SetHeaderField(req.Field, req.Value)
			case "issuer":
				c.SetIssuerField(req.Field, req.Value)
			case "bill_to":
				c.SetBillToField(req.Field, req.Value)
			case "ship_to":
				c.SetShipToField(req.Field, req.Value)
			case "bank":
				c.SetBankField(req.Field, req.Value)
			case "summary":
				c.SetSummaryField(req.Field, req.Value)
			}
		}
	case "set_item":
		apply = func(c *quotation.Controller) { c.SetLineItemField(req.Index, req.Field, req.Value) }
	case "add_item":
		apply = func(c *quotation.Controller) { c.AddLineItem() }
	case "remove_item":
		apply = func(c *quotation.Controller) { c.RemoveLineItem(req.Index) }
	case "set_term":
		apply = func(c *quotation.Controller) { c.SetTerm(req.Index, req.Value) }
	default:
		http.Error(w, "unknown op", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, sess.Edit(apply))
}

// CloseQuotation discards the session; the document is gone.
func (h *QuoteHandler) CloseQuotation(w http.ResponseWriter, r *http.Request, id string) {
	h.Sessions.Delete(id)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Quotation session closed"})
}

// PrintView serves the print-ready HTML for the browser's native print
// dialog: same document, editing affordances suppressed.
func (h *QuoteHandler) PrintView(w http.ResponseWriter, r *http.Request, id string) {
	sess := h.Sessions.Get(id)
	if sess == nil {
		http.Error(w, "quotation session not found", http.StatusNotFound)
		return
	}

	data := sess.PDFData()
	data.ShowEditing = false
	data.ShowAddItem = false
	data.ShowDeleteUI = false

	html, err := utils.RenderQuotationHTML(data)
	if err != nil {
		http.Error(w, "failed to render print view: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}
