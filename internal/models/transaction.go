package models

import (
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"
)

// Well-known normalization flags emitted by the merchant normalizer.
const (
	FlagSubscription   = "subscription"
	FlagHighValue      = "high_value"
	FlagForeign        = "foreign"
	FlagLowConfidence  = "low_confidence"
	FlagDuplicateGuess = "possible_duplicate"
)

// Transaction is one normalized transaction as returned by the merchant
// normalization endpoints.
type Transaction struct {
	ID         RecordID        `json:"id" validate:"required,record_id"`
	Original   *string         `json:"original,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Date       *Timestamp      `json:"date,omitempty"`
	Normalized Normalization   `json:"normalized"`
}

// Normalization is the merchant normalizer's verdict for a transaction.
type Normalization struct {
	Merchant       string  `json:"merchant"`
	Category       string  `json:"category"`
	SubCategory    string  `json:"sub_category"`
	Confidence     float64 `json:"confidence" validate:"confidence"`
	IsSubscription bool    `json:"is_subscription"`
	Flags          FlagSet `json:"flags"`
}

// RecordKey implements Record.
func (t Transaction) RecordKey() RecordID {
	return t.ID
}

// Description returns the raw source description, or the normalized merchant
// when the transaction has not been through normalization yet.
func (t Transaction) Description() string {
	if t.Original != nil && *t.Original != "" {
		return *t.Original
	}
	return t.Normalized.Merchant
}

// IsDebit reports whether money left the account.
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// FlagSet is a set of normalization flags. It is carried on the wire as a JSON
// array; duplicates collapse on decode.
type FlagSet map[string]struct{}

func NewFlagSet(flags ...string) FlagSet {
	fs := make(FlagSet, len(flags))
	for _, f := range flags {
		fs[f] = struct{}{}
	}
	return fs
}

func (fs FlagSet) Has(flag string) bool {
	_, ok := fs[flag]
	return ok
}

// Sorted returns the flags in lexical order.
func (fs FlagSet) Sorted() []string {
	out := make([]string, 0, len(fs))
	for f := range fs {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func (fs FlagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(fs.Sorted())
}

func (fs *FlagSet) UnmarshalJSON(data []byte) error {
	var flags []string
	if err := json.Unmarshal(data, &flags); err != nil {
		return err
	}
	*fs = NewFlagSet(flags...)
	return nil
}
