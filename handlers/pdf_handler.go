package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"saisolaredge/models"
	"saisolaredge/quotation"
	"saisolaredge/repository"
)

// UploadFunc pushes a finished PDF to remote storage and returns its
// public URL. Nil disables upload.
type UploadFunc func(fileBytes []byte, filename string) (string, error)

type PDFHandler struct {
	Sessions *repository.SessionStore
	Archive  repository.ArchiveRepository
	Exporter *quotation.Exporter
	SavePath string
	Upload   UploadFunc
}

// ExportPDF generates and saves the PDF for a session's document. A
// failed export leaves the session editable and is always retryable; a
// second request while one is running gets 409.
func (h *PDFHandler) ExportPDF(w http.ResponseWriter, r *http.Request, id string) {
	sess := h.Sessions.Get(id)
	if sess == nil {
		http.Error(w, "quotation session not found", http.StatusNotFound)
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		http.Error(w, "failed to create save directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pdfBytes, filename, err := h.Exporter.Export(sess)
	if err == quotation.ErrExportBusy {
		writeJSON(w, http.StatusConflict, ApiResponse{
			Success: false,
			Message: "An export is already in progress, try again shortly",
		})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to generate PDF, please retry: " + err.Error(),
		})
		return
	}

	savePath := filepath.Join(saveDir, filename)
	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	storageURL := ""
	if h.Upload != nil {
		url, err := h.Upload(pdfBytes, filename)
		if err != nil {
			// Log the error but don't block the response
			writeJSON(w, http.StatusOK, ApiResponse{
				Success: true,
				Message: "PDF saved locally, upload failed: " + err.Error(),
				Data:    map[string]string{"file": filename},
			})
			return
		}
		storageURL = url
	}

	if h.Archive != nil {
		doc := sess.Snapshot()
		rec := &models.ExportRecord{
			QuoteNo:    doc.QuoteNo,
			Customer:   doc.BillTo.Name,
			Total:      doc.Summary.Total,
			Filename:   filename,
			StorageURL: storageURL,
			CreatedAt:  time.Now().UTC(),
		}
		if err := h.Archive.SaveExport(rec); err != nil {
			// archive failure does not undo a successful export
			writeJSON(w, http.StatusOK, ApiResponse{
				Success: true,
				Message: "PDF saved, archive record failed: " + err.Error(),
				Data:    map[string]string{"file": filename, "url": storageURL},
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data:    map[string]string{"file": filename, "url": storageURL},
	})
}

// ListExports returns the archive, newest first.
func (h *PDFHandler) ListExports(w http.ResponseWriter, r *http.Request) {
	records, err := h.Archive.ListExports()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []*models.ExportRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}
