package pdf

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() domain.InvoiceDocument {
	return domain.InvoiceDocument{
		OrganizationName: "Memorial Park",
		InvoiceNumber:    "INV-20240309-ABC",
		IssuedAt:         time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		ReferenceNumber:  "WALK-ABC-C1",
		ClientName:       "Ana Cruz",
		LotNumber:        "12",
		LotType:          "Lawn",
		SectionName:      "Garden of Peace",
		LotPrice:         decimal.NewFromInt(5000),
		Amount:           decimal.NewFromInt(1000),
		AmountInWords:    "One thousand and 00/100",
		RemainingBalance: decimal.NewFromInt(2000),
		BalanceKnown:     true,
		PaymentType:      "installment",
		PaymentMethod:    "cash",
		PaymentStatus:    "Completed",
		CashierName:      "cashier.one",
		AgreementText:    "The buyer agrees to the park rules.",
	}
}

func sampleCertificate() domain.CertificateDocument {
	return domain.CertificateDocument{
		OrganizationName:   "Memorial Park",
		CertificateNumber:  "COO-20240309-CL1-ABC",
		IssuedAt:           time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		ClientName:         "Ana Cruz",
		Section:            "A",
		Block:              "3",
		LotNumber:          "12",
		LotType:            "Lawn",
		SignedAt:           time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		AuthorizedBy:       "Maria Santos",
		AuthorizedPosition: "Park Administrator",
	}
}

func TestFPDFRenderer(t *testing.T) {
	r := NewFPDFRenderer()

	invoice, err := r.RenderInvoice(context.Background(), sampleInvoice())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(invoice[:4]))

	cert, err := r.RenderCertificate(context.Background(), sampleCertificate())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(cert[:4]))
}

func TestFPDFRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFPDFRenderer().RenderInvoice(ctx, sampleInvoice())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGotenbergRenderer(t *testing.T) {
	var gotHTML string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, chromiumHTMLRoute, r.URL.Path)
		file, _, err := r.FormFile("files")
		if !assert.NoError(t, err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		raw, _ := io.ReadAll(file)
		gotHTML = string(raw)
		_, _ = w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	r := NewGotenbergRenderer(srv.URL+"/", srv.Client())

	out, err := r.RenderInvoice(context.Background(), sampleInvoice())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 fake", string(out))
	assert.Contains(t, gotHTML, "INV-20240309-ABC")
	assert.Contains(t, gotHTML, "5,000.00")
	assert.Contains(t, gotHTML, "Remaining balance")

	_, err = r.RenderCertificate(context.Background(), sampleCertificate())
	require.NoError(t, err)
	assert.Contains(t, gotHTML, "Maria Santos")
}

func TestGotenbergRenderer_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "chromium crashed", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewGotenbergRenderer(srv.URL, nil).RenderInvoice(context.Background(), sampleInvoice())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
