// Package pdf renders invoices and certificates of ownership.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
	"github.com/SscSPs/memorial_park_app/internal/utils"
	"github.com/go-pdf/fpdf"
)

const (
	dateLayout = "January 2, 2006"
	pageWidth  = 190.0
	labelWidth = 55.0
)

// FPDFRenderer draws documents directly with fpdf.
type FPDFRenderer struct{}

var _ gateways.PDFRenderer = FPDFRenderer{}

func NewFPDFRenderer() FPDFRenderer {
	return FPDFRenderer{}
}

func (FPDFRenderer) RenderInvoice(ctx context.Context, doc domain.InvoiceDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Invoice "+doc.InvoiceNumber, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(pageWidth, 10, tr(doc.OrganizationName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(pageWidth, 7, "OFFICIAL RECEIPT / INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelWidth, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(pageWidth-labelWidth, 7, tr(value), "", 1, "L", false, 0, "")
	}

	row("Invoice number", doc.InvoiceNumber)
	row("Reference number", doc.ReferenceNumber)
	row("Date issued", doc.IssuedAt.Format(dateLayout))
	pdf.Ln(3)

	section(pdf, "Client")
	row("Name", doc.ClientName)
	if doc.ClientEmail != "" {
		row("Email", doc.ClientEmail)
	}
	pdf.Ln(3)

	section(pdf, "Lot")
	row("Lot number", doc.LotNumber)
	row("Lot type", doc.LotType)
	row("Section", doc.SectionName)
	row("Lot price", utils.FormatMoney(doc.LotPrice))
	pdf.Ln(3)

	section(pdf, "Payment")
	row("Amount paid", utils.FormatMoney(doc.Amount))
	row("Amount in words", doc.AmountInWords)
	row("Payment type", doc.PaymentType)
	row("Payment method", doc.PaymentMethod)
	row("Status", doc.PaymentStatus)
	if doc.BalanceKnown {
		row("Remaining balance", utils.FormatMoney(doc.RemainingBalance))
	}
	row("Received by", doc.CashierName)
	if doc.Notes != "" {
		row("Notes", doc.Notes)
	}

	if doc.AgreementText != "" {
		pdf.Ln(4)
		section(pdf, "Agreement")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(pageWidth, 5, tr(doc.AgreementText), "", "L", false)
	}

	return output(pdf)
}

func (FPDFRenderer) RenderCertificate(ctx context.Context, doc domain.CertificateDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Certificate of Ownership "+doc.CertificateNumber, true)
	pdf.AddPage()
	width := 277.0

	pdf.SetLineWidth(1.2)
	pdf.Rect(10, 10, width, 190, "D")

	pdf.SetY(28)
	pdf.SetFont("Times", "B", 26)
	pdf.CellFormat(width, 12, "CERTIFICATE OF OWNERSHIP", "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "", 14)
	pdf.CellFormat(width, 8, tr(doc.OrganizationName), "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "I", 10)
	pdf.CellFormat(width, 6, "No. "+doc.CertificateNumber, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Times", "", 13)
	pdf.CellFormat(width, 8, "This certifies that", "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "B", 20)
	pdf.CellFormat(width, 12, tr(doc.ClientName), "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "", 13)
	pdf.CellFormat(width, 8, "is the registered owner of the following memorial lot:", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Times", "B", 13)
	lot := fmt.Sprintf("Section %s, Block %s, Lot %s (%s)", doc.Section, doc.Block, doc.LotNumber, doc.LotType)
	pdf.CellFormat(width, 8, tr(lot), "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "", 12)
	pdf.CellFormat(width, 8, "Signed on "+doc.SignedAt.Format(dateLayout), "", 1, "C", false, 0, "")

	pdf.SetY(165)
	pdf.SetFont("Times", "B", 12)
	pdf.CellFormat(width, 6, tr(doc.AuthorizedBy), "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "", 11)
	pdf.CellFormat(width, 6, tr(doc.AuthorizedPosition), "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "I", 9)
	pdf.CellFormat(width, 6, "Issued "+doc.IssuedAt.Format(dateLayout), "", 1, "C", false, 0, "")

	return output(pdf)
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(pageWidth, 7, title, "", 1, "L", true, 0, "")
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
