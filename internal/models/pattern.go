package models

import (
	"github.com/shopspring/decimal"
)

const (
	PatternTypeRecurring    = "recurring"
	PatternTypeSubscription = "subscription"
	PatternTypeInstallment  = "installment"
)

const (
	FrequencyWeekly    = "weekly"
	FrequencyBiweekly  = "biweekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
	FrequencyIrregular = "irregular"
)

// Pattern is a recurring-payment pattern found by the pattern analyzer.
// NextExpected is normally after LastOccurrence but that ordering is the
// backend's concern and is not checked here.
type Pattern struct {
	ID              RecordID        `json:"id" validate:"required,record_id"`
	Type            string          `json:"type"`
	Merchant        string          `json:"merchant"`
	Amount          decimal.Decimal `json:"amount"`
	Frequency       string          `json:"frequency"`
	Confidence      float64         `json:"confidence" validate:"confidence"`
	NextExpected    *Timestamp      `json:"next_expected,omitempty"`
	LastOccurrence  *Timestamp      `json:"last_occurrence,omitempty"`
	OccurrenceCount int             `json:"occurrence_count" validate:"gte=0"`
	IsActive        bool            `json:"is_active"`
}

// RecordKey implements Record.
func (p Pattern) RecordKey() RecordID {
	return p.ID
}

// IsKnownFrequency reports whether Frequency is one of the analyzer's
// documented cadences. Unknown values are still displayed verbatim.
func (p Pattern) IsKnownFrequency() bool {
	switch p.Frequency {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly,
		FrequencyQuarterly, FrequencyYearly, FrequencyIrregular:
		return true
	}
	return false
}
