package quotation

import (
	"errors"
	"log"
	"strings"

	"saisolaredge/models"
)

// ErrExportBusy is returned when a second export is requested while
// one is already running for the same session.
var ErrExportBusy = errors.New("an export is already in progress")

// RenderFunc turns the snapshotted view into PDF bytes.
type RenderFunc func(data *models.QuotationPDFData) ([]byte, error)

// Exporter runs the PDF snapshot with the editing affordances hidden.
// Their prior visibility is restored on every exit path, and at most
// one export per session is in flight at a time.
type Exporter struct {
	Render RenderFunc
}

func (e *Exporter) Export(s *Session) ([]byte, string, error) {
	if !s.exporting.CompareAndSwap(false, true) {
		return nil, "", ErrExportBusy
	}
	defer s.exporting.Store(false)

	// Flip the flags and snapshot under the session lock, then render
	// from the copy so concurrent edits cannot touch what the template
	// sees. The lock is not held across the render itself.
	s.mu.Lock()
	prevEditing := s.ShowEditing
	prevAddItem := s.ShowAddItem
	prevDelete := s.ShowDeleteUI

	s.ShowEditing = false
	s.ShowAddItem = false
	s.ShowDeleteUI = false

	data := s.pdfDataLocked()
	filename := ExportFilename(data.Quote.QuoteNo)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.ShowEditing = prevEditing
		s.ShowAddItem = prevAddItem
		s.ShowDeleteUI = prevDelete
		s.mu.Unlock()
	}()

	pdfBytes, err := e.Render(data)
	if err != nil {
		log.Printf("quotation export failed: %v", err)
		return nil, "", err
	}

	return pdfBytes, filename, nil
}

// ExportFilename derives the download name from the quote number. The
// quote number is free text, so path separators are flattened before
// the name reaches the filesystem.
func ExportFilename(quoteNo string) string {
	if quoteNo == "" {
		quoteNo = "Document"
	}
	quoteNo = strings.NewReplacer("/", "-", "\\", "-").Replace(quoteNo)
	return "Quotation_" + quoteNo + ".pdf"
}
