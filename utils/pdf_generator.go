package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"saisolaredge/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// RenderQuotationHTML executes the quotation template and wraps it in
// a printable page. The same output serves the print view and the PDF
// snapshot; affordance visibility is controlled by the data flags.
func RenderQuotationHTML(data *models.QuotationPDFData) (string, error) {
	tmpl, err := template.ParseFiles("templates/quotation.html")
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 0.2in;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.quotation-document {
			page-break-inside: avoid;
		}
		.line-row, .summary-block, .bank-terms, .party-block, .meta-bar {
			page-break-inside: avoid;
			break-inside: avoid;
		}
		@media print {
			.edit-icon, .add-item-btn, .delete-col {
				display: none !important;
			}
		}
		</style>
		</head>
		<body>` + body.String() + `</body></html>`

	return finalHTML, nil
}

// GenerateQuotationPDF renders the document and snapshots it with
// headless Chrome at 2x device scale for print sharpness: A4 portrait,
// 0.2in margins, no logical block split across a page boundary.
func GenerateQuotationPDF(data *models.QuotationPDFData) ([]byte, error) {
	finalHTML, err := RenderQuotationHTML(data)
	if err != nil {
		return nil, err
	}

	// Create temp HTML file
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "quotation_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.EmulateViewport(794, 1123, chromedp.EmulateScale(2)),
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				WithMarginTop(0.2).
				WithMarginBottom(0.2).
				WithMarginLeft(0.2).
				WithMarginRight(0.2).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
