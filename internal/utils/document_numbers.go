package utils

import (
	"strconv"
	"strings"
	"time"
)

// Base36Millis is the upper-case base 36 encoding of t in unix milliseconds.
func Base36Millis(t time.Time) string {
	return strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

// WalkInReferenceNumber builds "WALK-<base36 millis>-<first six chars of cashier id>".
func WalkInReferenceNumber(now time.Time, cashierID string) string {
	return "WALK-" + Base36Millis(now) + "-" + strings.ToUpper(prefix(cashierID, 6))
}

// InvoiceNumber builds "INV-YYYYMMDD-<base36 millis>".
func InvoiceNumber(now time.Time) string {
	return "INV-" + now.UTC().Format("20060102") + "-" + Base36Millis(now)
}

// CertificateNumber builds "COO-YYYYMMDD-<client id prefix>-<base36 millis>".
func CertificateNumber(now time.Time, clientID string) string {
	compact := strings.ReplaceAll(clientID, "-", "")
	return "COO-" + now.UTC().Format("20060102") + "-" + strings.ToUpper(prefix(compact, 8)) + "-" + Base36Millis(now)
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
