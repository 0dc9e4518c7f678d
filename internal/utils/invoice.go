package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const invoiceLayout = "20060102-150405"

var invoiceSuffixRange = big.NewInt(10000)

// GenerateInvoiceNumber returns INV-YYYYMMDD-HHMMSS-mmm-RRRR for the given instant, in UTC.
func GenerateInvoiceNumber(at time.Time) string {
	at = at.UTC()
	return fmt.Sprintf("INV-%s-%03d-%04d", at.Format(invoiceLayout), at.Nanosecond()/int(time.Millisecond), invoiceSuffix(at))
}

func invoiceSuffix(at time.Time) int64 {
	n, err := rand.Int(rand.Reader, invoiceSuffixRange)
	if err != nil {
		return at.UnixNano() % invoiceSuffixRange.Int64()
	}
	return n.Int64()
}
