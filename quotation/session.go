package quotation

import (
	"sync"
	"sync/atomic"

	"saisolaredge/models"

	"github.com/google/uuid"
)

// Session is one open quotation view: the live document plus the
// visibility state of its editing affordances. It lives in memory only
// and is discarded when the view closes.
//
// Handlers run on separate goroutines, so every access to the document
// or the flags goes through the session mutex; readers get deep copies
// and never hold a reference into the live document.
type Session struct {
	ID         string
	Controller *Controller

	ShowEditing  bool
	ShowAddItem  bool
	ShowDeleteUI bool

	mu        sync.Mutex
	exporting atomic.Bool
}

func NewSession(doc *models.Quotation) *Session {
	return &Session{
		ID:           uuid.NewString(),
		Controller:   NewController(doc),
		ShowEditing:  true,
		ShowAddItem:  true,
		ShowDeleteUI: true,
	}
}

// Edit runs fn against the controller under the session lock and
// returns a snapshot of the resulting document.
func (s *Session) Edit(fn func(*Controller)) *models.Quotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.Controller)
	return s.Controller.Document().Clone()
}

// Snapshot returns a copy of the current document.
func (s *Session) Snapshot() *models.Quotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Controller.Document().Clone()
}

// PDFData snapshots the current document and affordance state for the
// HTML template.
func (s *Session) PDFData() *models.QuotationPDFData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pdfDataLocked()
}

func (s *Session) pdfDataLocked() *models.QuotationPDFData {
	return &models.QuotationPDFData{
		Quote:        s.Controller.Document().Clone(),
		ShowEditing:  s.ShowEditing,
		ShowAddItem:  s.ShowAddItem,
		ShowDeleteUI: s.ShowDeleteUI,
	}
}
