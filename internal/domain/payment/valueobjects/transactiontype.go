package valueobjects

import (
	"fmt"
	"strings"
)

type TransactionType string

const (
	TransactionTypeAuth    TransactionType = "auth"
	TransactionTypeCapture TransactionType = "capture"
	TransactionTypeRefund  TransactionType = "refund"
)

func NewTransactionType(value string) (TransactionType, error) {
	t := TransactionType(value)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown transaction type: %s", value)
	}
	return t, nil
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeAuth, TransactionTypeCapture, TransactionTypeRefund:
		return true
	default:
		return false
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// StripTransactionSuffixes removes the gateway's "-capture" and "-refund"
// markers from a transaction id, recovering the original gateway reference.
// The suffix convention is gateway specific and must be kept byte for byte.
func StripTransactionSuffixes(id string) string {
	id = strings.ReplaceAll(id, "-capture", "")
	return strings.ReplaceAll(id, "-refund", "")
}
