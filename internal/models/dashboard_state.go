package models

// DashboardState is an immutable snapshot of everything a dashboard surface
// renders. Slices and maps are copies owned by the caller.
type DashboardState struct {
	ActiveTab    Tab               `json:"active_tab"`
	Transactions []Transaction     `json:"transactions"`
	Patterns     []Pattern         `json:"patterns"`
	Loading      bool              `json:"loading"`
	Busy         map[BusyFlag]bool `json:"busy"`
	PendingIDs   []RecordID        `json:"pending_ids"`
	Notification *Notification     `json:"notification,omitempty"`
	CanDeleteAll bool              `json:"can_delete_all"`
}

func (s DashboardState) IsBusy(flag BusyFlag) bool {
	return s.Busy[flag]
}

func (s DashboardState) IsPending(id RecordID) bool {
	for _, p := range s.PendingIDs {
		if p == id {
			return true
		}
	}
	return false
}

// ActiveCount returns the size of the active tab's collection.
func (s DashboardState) ActiveCount() int {
	if s.ActiveTab == TabPattern {
		return len(s.Patterns)
	}
	return len(s.Transactions)
}

// LoaderSnapshot is a copy of the two collections and the active tab.
type LoaderSnapshot struct {
	ActiveTab    Tab
	Transactions []Transaction
	Patterns     []Pattern
	Loading      bool
}

// Button keys used by ButtonLabels.
const (
	ButtonUpload    = "upload"
	ButtonAnalyze   = "analyze"
	ButtonDetect    = "detect"
	ButtonDeleteAll = "delete_all"
)

// ButtonLabels returns the caption of each action button. A button reads
// "...ing..." while its action is in flight.
func (s DashboardState) ButtonLabels() map[string]string {
	label := func(flag BusyFlag, idle, busy string) string {
		if s.Busy[flag] {
			return busy
		}
		return idle
	}
	return map[string]string{
		ButtonUpload:    label(FlagUploading, "Upload CSV", "Uploading..."),
		ButtonAnalyze:   label(FlagAnalyzingMerchant, "Run Merchant Analysis", "Analyzing..."),
		ButtonDetect:    label(FlagDetectingPatterns, "Run Pattern Detection", "Detecting..."),
		ButtonDeleteAll: label(FlagBulkDeleting, "Delete All", "Deleting..."),
	}
}
