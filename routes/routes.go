package routes

import (
	"net/http"
	"strings"

	"saisolaredge/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	quoteHandler *handlers.QuoteHandler,
	pdfHandler *handlers.PDFHandler,
	profileHandler *handlers.ProfileHandler,
) {
	// Open a new quotation session
	http.Handle("/quotation", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		quoteHandler.OpenQuotation(w, r)
	}))))

	// Session routes: /quotation/{id}[/pdf|/print]
	http.Handle("/quotation/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		rest := r.URL.Path[len("/quotation/"):]
		if rest == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		id, action, _ := strings.Cut(rest, "/")
		switch action {
		case "":
			switch r.Method {
			case http.MethodGet:
				quoteHandler.GetQuotation(w, r, id)
			case http.MethodPatch:
				quoteHandler.EditQuotation(w, r, id)
			case http.MethodDelete:
				quoteHandler.CloseQuotation(w, r, id)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		case "pdf":
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			pdfHandler.ExportPDF(w, r, id)
		case "print":
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			quoteHandler.PrintView(w, r, id)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))))

	// Export archive
	http.Handle("/exports", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		pdfHandler.ListExports(w, r)
	}))))

	// Issuer profile routes
	http.Handle("/profile", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			profileHandler.SaveProfile(w, r)
		case http.MethodGet:
			profileHandler.GetProfile(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))
}
