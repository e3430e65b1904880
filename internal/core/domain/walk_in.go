package domain

// WalkInStage names one step of recording a walk-in payment.
type WalkInStage string

const (
	StageValidated         WalkInStage = "validated"
	StageClientResolved    WalkInStage = "client_resolved"
	StageLotResolved       WalkInStage = "lot_resolved"
	StagePaymentWritten    WalkInStage = "payment_written"
	StageBalanceRecomputed WalkInStage = "balance_recomputed"
	StageInvoiceIssued     WalkInStage = "invoice_issued"
	StageCertificateIssued WalkInStage = "certificate_issued"
	StageClientNotified    WalkInStage = "client_notified"
	StageCashierNotified   WalkInStage = "cashier_notified"
	StageActivityLogged    WalkInStage = "activity_logged"
	StageClientActivated   WalkInStage = "client_activated"
)

// StageResult records how a post-write stage ended. Err is nil on success.
type StageResult struct {
	Stage   WalkInStage
	Skipped bool
	Err     error
}

// WalkInResult is the outcome of a recorded walk-in payment.
type WalkInResult struct {
	Payment        Payment
	Client         ResolvedClient
	Lot            ResolvedLot
	ContractPDFURL string
	Balance        *BalanceSnapshot
	Stages         []StageResult
}

// Failed returns the post-write stages that ended in error.
func (r WalkInResult) Failed() []StageResult {
	var out []StageResult
	for _, s := range r.Stages {
		if s.Err != nil {
			out = append(out, s)
		}
	}
	return out
}
