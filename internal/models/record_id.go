package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyRecordID = errors.New("record id is empty")

// RecordID is the backend's opaque identifier for a transaction or pattern.
// The backend emits ids either as JSON strings or as JSON numbers; both decode
// to the same textual form so lookups never depend on the wire representation.
type RecordID string

func (id RecordID) String() string {
	return string(id)
}

func (id RecordID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = RecordID(n.String())
	return nil
}

func (id RecordID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// ParseRecordID validates a path or form supplied identifier.
func ParseRecordID(raw string) (RecordID, error) {
	id := RecordID(strings.TrimSpace(raw))
	if id.IsZero() {
		return "", ErrEmptyRecordID
	}
	return id, nil
}
