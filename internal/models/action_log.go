package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionUpload            = "upload"
	ActionAnalyzeMerchants  = "analyze_merchants"
	ActionDetectPatterns    = "detect_patterns"
	ActionDeleteTransaction = "delete_transaction"
	ActionDeleteAll         = "delete_all"
	ActionFetch             = "fetch"
	ActionSwitchTab         = "switch_tab"
)

const (
	OutcomeStarted   = "started"
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "rejected"
)

// ActionLog is one row of the operator action journal.
type ActionLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Action     string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string    `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string    `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	Outcome    string    `gorm:"type:varchar(20);not null;index" json:"outcome"`
	ErrorCode  string    `gorm:"type:varchar(50)" json:"error_code,omitempty"`
	DurationMS int64     `gorm:"not null;default:0" json:"duration_ms"`
	TraceID    string    `gorm:"type:varchar(64);index" json:"trace_id,omitempty"`
	Metadata   JSONBMap  `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}

func (al *ActionLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *ActionLog) GetMetadata(key string, defaultValue interface{}) interface{} {
	if al.Metadata == nil {
		return defaultValue
	}
	if value, exists := al.Metadata[key]; exists {
		return value
	}
	return defaultValue
}

func (al *ActionLog) String() string {
	target := al.Resource
	if al.ResourceID != "" {
		target = al.Resource + "/" + al.ResourceID
	}
	return fmt.Sprintf("ActionLog[Action: %s, Target: %s, Outcome: %s, Duration: %dms, Time: %s]",
		al.Action, target, al.Outcome, al.DurationMS, al.CreatedAt.Format(time.RFC3339))
}

func (al *ActionLog) TableName() string {
	return "action_logs"
}

func (al *ActionLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// JSONBMap is a JSON object column. It is stored as text so the same model
// works on sqlite and postgres.
type JSONBMap map[string]interface{}

func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
