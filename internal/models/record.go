package models

// Record is implemented by every row the dashboard lists.
type Record interface {
	Transaction | Pattern
	RecordKey() RecordID
}

// IndexOf returns the position of id in records, or -1.
func IndexOf[T Record](records []T, id RecordID) int {
	for i, r := range records {
		if r.RecordKey() == id {
			return i
		}
	}
	return -1
}

// Without returns a copy of records with every entry keyed by id removed.
func Without[T Record](records []T, id RecordID) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.RecordKey() != id {
			out = append(out, r)
		}
	}
	return out
}
