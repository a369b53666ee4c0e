package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"transaction-analyzer/internal/models"
)

// Wrapper keys the analysis backend has used for list payloads, in the order
// they are tried.
var (
	TransactionListKeys = []string{"normalized_transactions", "transactions", "data"}
	PatternListKeys     = []string{"patterns", "data"}
)

// UploadAck is the ingestion endpoint's reply to a CSV upload.
type UploadAck struct {
	Message          string `json:"message,omitempty"`
	FileName         string `json:"filename,omitempty"`
	RecordsProcessed int    `json:"records_processed,omitempty"`
}

// Ack is the reply to a delete call.
type Ack struct {
	Message      string `json:"message,omitempty"`
	DeletedCount int    `json:"deleted_count,omitempty"`
}

type AnalyzeMerchantsResult struct {
	NormalizedTransactions []models.Transaction `json:"normalized_transactions"`
}

type DetectPatternsResult struct {
	Patterns []models.Pattern `json:"patterns"`
}

// BackendErrorBody covers the error shapes the backend emits: FastAPI style
// {"detail": ...} as well as {"error": ...} and {"message": ...}.
type BackendErrorBody struct {
	Detail  json.RawMessage `json:"detail,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Text returns the most specific human readable message in the body.
func (b BackendErrorBody) Text() string {
	if len(b.Detail) > 0 && string(b.Detail) != "null" {
		var s string
		if err := json.Unmarshal(b.Detail, &s); err == nil {
			return s
		}
		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(b.Detail, &items); err == nil {
			msgs := make([]string, 0, len(items))
			for _, it := range items {
				if it.Msg != "" {
					msgs = append(msgs, it.Msg)
				}
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, "; ")
			}
		}
		return string(b.Detail)
	}
	if b.Error != "" {
		return b.Error
	}
	return b.Message
}

// ParseBackendError extracts a message from a non-2xx body. Bodies that are
// not JSON are returned trimmed, capped at 200 bytes.
func ParseBackendError(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	var eb BackendErrorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if text := eb.Text(); text != "" {
			return text
		}
	}

	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}

// DecodeList decodes a list payload that is either a bare JSON array or an
// object wrapping the array under one of keys. A JSON null is an empty list.
func DecodeList[T any](body []byte, keys ...string) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	switch body[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}
		return nonNil(items), nil
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(body, &wrapper); err != nil {
			return nil, err
		}
		for _, key := range keys {
			raw, ok := wrapper[key]
			if !ok {
				continue
			}
			var items []T
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, fmt.Errorf("field %q: %w", key, err)
			}
			return nonNil(items), nil
		}
		return nil, fmt.Errorf("response object has none of the list fields %v", keys)
	default:
		if string(body) == "null" {
			return []T{}, nil
		}
		return nil, fmt.Errorf("unexpected response body starting with %q", body[0])
	}
}

// DecodeObject decodes an optional JSON object. An empty body leaves out
// untouched.
func DecodeObject(body []byte, out interface{}) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
