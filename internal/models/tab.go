package models

import "fmt"

// Tab names one of the two dashboard resources.
type Tab string

const (
	TabMerchant Tab = "merchant"
	TabPattern  Tab = "pattern"
)

func (t Tab) IsValid() bool {
	return t == TabMerchant || t == TabPattern
}

// Resource returns the backend resource name the tab lists.
func (t Tab) Resource() string {
	switch t {
	case TabMerchant:
		return ResourceTransactions
	case TabPattern:
		return ResourcePatterns
	default:
		return ""
	}
}

// Title is the tab's heading.
func (t Tab) Title() string {
	switch t {
	case TabMerchant:
		return "Merchant Analysis"
	case TabPattern:
		return "Pattern Detection"
	default:
		return string(t)
	}
}

func ParseTab(raw string) (Tab, error) {
	t := Tab(raw)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown tab %q", raw)
	}
	return t, nil
}

const (
	ResourceTransactions = "transactions"
	ResourcePatterns     = "patterns"
	ResourceUpload       = "upload"
)

// BusyFlag names a coarse-grained action that can be in flight at most once.
type BusyFlag string

const (
	FlagUploading         BusyFlag = "uploading"
	FlagAnalyzingMerchant BusyFlag = "analyzingMerchant"
	FlagDetectingPatterns BusyFlag = "detectingPatterns"
	FlagBulkDeleting      BusyFlag = "bulkDeleting"
)

// AllBusyFlags lists the flags in display order.
var AllBusyFlags = []BusyFlag{
	FlagUploading,
	FlagAnalyzingMerchant,
	FlagDetectingPatterns,
	FlagBulkDeleting,
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is the single transient message shown to the operator.
type Notification struct {
	Kind    NotificationKind `json:"type"`
	Message string           `json:"message"`
}
