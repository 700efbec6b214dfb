package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionType(t *testing.T) {
	txnType, err := NewTransactionType("auth")
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeAuth, txnType)

	_, err = NewTransactionType("void")
	assert.Error(t, err)
}

func TestStripTransactionSuffixes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abc123-capture", "abc123"},
		{"abc123-refund", "abc123"},
		{"abc123", "abc123"},
		{"abc123-capture-refund", "abc123"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StripTransactionSuffixes(tt.input), "input %q", tt.input)
	}
}
