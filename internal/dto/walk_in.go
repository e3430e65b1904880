package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// WalkInPaymentRequest is the body of POST /api/cashier/walk-in.
type WalkInPaymentRequest struct {
	CashierID       string          `json:"cashierId" validate:"required"`
	Amount          decimal.Decimal `json:"amount" validate:"gt=0"`
	PaymentType     string          `json:"paymentType" validate:"required"`
	PaymentMethod   string          `json:"paymentMethod" validate:"required"`
	CashierUsername string          `json:"cashierUsername"`
	ClientID        string          `json:"clientId"`
	ClientName      string          `json:"clientName"`
	ClientEmail     string          `json:"clientEmail" validate:"omitempty,email"`
	LotID           string          `json:"lotId"`
	PaymentStatus   string          `json:"paymentStatus"`
	Notes           string          `json:"notes"`
	AgreementText   string          `json:"agreementText"`
	SourcePaymentID string          `json:"sourcePaymentId"`
}

// Normalize trims identifier and free-text fields in place.
func (r *WalkInPaymentRequest) Normalize() {
	for _, s := range []*string{
		&r.CashierID, &r.CashierUsername, &r.ClientID, &r.ClientName, &r.ClientEmail,
		&r.LotID, &r.PaymentType, &r.PaymentMethod, &r.PaymentStatus, &r.SourcePaymentID,
	} {
		*s = strings.TrimSpace(*s)
	}
}

// HasClientIdentity reports whether the request names a client by id or by name and email.
func (r WalkInPaymentRequest) HasClientIdentity() bool {
	return r.ClientID != "" || (r.ClientName != "" && r.ClientEmail != "")
}

// Status returns the requested payment status, defaulting to Completed.
func (r WalkInPaymentRequest) Status() domain.PaymentStatus {
	if r.PaymentStatus == "" {
		return domain.PaymentCompleted
	}
	return domain.PaymentStatus(r.PaymentStatus)
}

var fieldMessages = map[string]string{
	"cashierId":     "cashierId is required",
	"amount":        "Invalid amount",
	"paymentType":   "paymentType and paymentMethod are required",
	"paymentMethod": "paymentType and paymentMethod are required",
	"clientEmail":   "Invalid clientEmail",
}

// Validate checks the request and returns an apperrors.ErrValidation carrying a client-facing message.
func (r WalkInPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			if msg, ok := fieldMessages[fieldErrs[0].Field()]; ok {
				return apperrors.Validationf("%s", msg)
			}
			return apperrors.Validationf("Invalid %s", fieldErrs[0].Field())
		}
		return apperrors.Validationf("Invalid request: %s", err.Error())
	}
	if !r.HasClientIdentity() {
		return apperrors.Validationf("clientId or clientName and clientEmail are required")
	}
	return nil
}

// WalkInPaymentResponse is the stored payment row merged with the issued document links.
type WalkInPaymentResponse struct {
	domain.Payment
	ContractPDFURL string `json:"contract_pdf_url"`
}

// ToWalkInPaymentResponse converts a walk-in result into its response DTO.
func ToWalkInPaymentResponse(res *domain.WalkInResult) WalkInPaymentResponse {
	return WalkInPaymentResponse{
		Payment:        res.Payment,
		ContractPDFURL: res.ContractPDFURL,
	}
}
