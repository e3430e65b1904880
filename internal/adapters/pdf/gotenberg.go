package pdf

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
	"github.com/SscSPs/memorial_park_app/internal/utils"
)

const chromiumHTMLRoute = "/forms/chromium/convert/html"

// GotenbergRenderer renders HTML templates and converts them through a Gotenberg service.
type GotenbergRenderer struct {
	baseURL    string
	httpClient *http.Client
}

var _ gateways.PDFRenderer = (*GotenbergRenderer)(nil)

func NewGotenbergRenderer(baseURL string, httpClient *http.Client) *GotenbergRenderer {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &GotenbergRenderer{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

var templateFuncs = template.FuncMap{
	"money": utils.FormatMoney,
	"date":  func(t time.Time) string { return t.Format(dateLayout) },
}

var invoiceTemplate = template.Must(template.New("invoice").Funcs(templateFuncs).Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>Invoice {{.InvoiceNumber}}</title>
<style>body{font-family:sans-serif;font-size:12px}th{text-align:left;width:35%}h1,h2{text-align:center}</style>
</head><body>
<h1>{{.OrganizationName}}</h1><h2>Official Receipt / Invoice</h2>
<table>
<tr><th>Invoice number</th><td>{{.InvoiceNumber}}</td></tr>
<tr><th>Reference number</th><td>{{.ReferenceNumber}}</td></tr>
<tr><th>Date issued</th><td>{{date .IssuedAt}}</td></tr>
<tr><th>Client</th><td>{{.ClientName}}{{if .ClientEmail}} ({{.ClientEmail}}){{end}}</td></tr>
<tr><th>Lot</th><td>{{.LotNumber}} / {{.LotType}} / {{.SectionName}}</td></tr>
<tr><th>Lot price</th><td>{{money .LotPrice}}</td></tr>
<tr><th>Amount paid</th><td>{{money .Amount}}</td></tr>
<tr><th>Amount in words</th><td>{{.AmountInWords}}</td></tr>
<tr><th>Payment</th><td>{{.PaymentType}} / {{.PaymentMethod}} / {{.PaymentStatus}}</td></tr>
{{if .BalanceKnown}}<tr><th>Remaining balance</th><td>{{money .RemainingBalance}}</td></tr>{{end}}
<tr><th>Received by</th><td>{{.CashierName}}</td></tr>
{{if .Notes}}<tr><th>Notes</th><td>{{.Notes}}</td></tr>{{end}}
</table>
{{if .AgreementText}}<h3>Agreement</h3><p>{{.AgreementText}}</p>{{end}}
</body></html>`))

var certificateTemplate = template.Must(template.New("certificate").Funcs(templateFuncs).Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>Certificate {{.CertificateNumber}}</title>
<style>body{font-family:serif;text-align:center;border:4px double #333;padding:40px}</style>
</head><body>
<h1>Certificate of Ownership</h1>
<p>{{.OrganizationName}}<br><small>No. {{.CertificateNumber}}</small></p>
<p>This certifies that</p><h2>{{.ClientName}}</h2>
<p>is the registered owner of Section {{.Section}}, Block {{.Block}}, Lot {{.LotNumber}} ({{.LotType}})</p>
<p>Signed on {{date .SignedAt}}</p>
<p><strong>{{.AuthorizedBy}}</strong><br>{{.AuthorizedPosition}}</p>
<p><small>Issued {{date .IssuedAt}}</small></p>
</body></html>`))

func (g *GotenbergRenderer) RenderInvoice(ctx context.Context, doc domain.InvoiceDocument) ([]byte, error) {
	var html bytes.Buffer
	if err := invoiceTemplate.Execute(&html, doc); err != nil {
		return nil, fmt.Errorf("failed to render invoice html: %w", err)
	}
	return g.convert(ctx, html.Bytes())
}

func (g *GotenbergRenderer) RenderCertificate(ctx context.Context, doc domain.CertificateDocument) ([]byte, error) {
	var html bytes.Buffer
	if err := certificateTemplate.Execute(&html, doc); err != nil {
		return nil, fmt.Errorf("failed to render certificate html: %w", err)
	}
	return g.convert(ctx, html.Bytes())
}

func (g *GotenbergRenderer) convert(ctx context.Context, html []byte) ([]byte, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(html); err != nil {
		return nil, fmt.Errorf("failed to write html to form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+chromiumHTMLRoute, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build gotenberg request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gotenberg request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("gotenberg conversion failed: status %d: %s", resp.StatusCode, string(respBody))
	}

	pdfBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gotenberg response: %w", err)
	}
	return pdfBytes, nil
}
