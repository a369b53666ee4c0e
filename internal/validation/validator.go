package validation

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"transaction-analyzer/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("record_id", validateRecordID)
	_ = v.RegisterValidation("confidence", validateConfidence)
	_ = v.RegisterValidation("tab", validateTab)
	_ = v.RegisterValidation("csv_file", validateCSVFile)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a single payload.
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Each validates every element of a decoded list and reports the first
// offending index.
func Each[T any](v *Validator, items []T) error {
	for i := range items {
		if err := v.validate.Struct(&items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// FieldErrors flattens validator errors into "field: reason" details.
func FieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err == nil {
			return nil
		}
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), describe(fe)))
	}
	return details
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "record_id":
		return "must be a non-empty identifier"
	case "confidence":
		return "must be between 0 and 1"
	case "tab":
		return "must be merchant or pattern"
	case "csv_file":
		return "must be a .csv file"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// Custom validation functions

// validateRecordID rejects blank identifiers
func validateRecordID(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateConfidence checks a score lies in [0,1]
func validateConfidence(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		c := fl.Field().Float()
		return !math.IsNaN(c) && c >= 0 && c <= 1
	default:
		return false
	}
}

func validateTab(fl validator.FieldLevel) bool {
	return models.Tab(fl.Field().String()).IsValid()
}

// validateCSVFile checks the upload's file name extension
func validateCSVFile(fl validator.FieldLevel) bool {
	return IsCSVFileName(fl.Field().String())
}

// IsCSVFileName reports whether name carries a .csv extension, case-insensitively.
func IsCSVFileName(name string) bool {
	return strings.EqualFold(filepath.Ext(strings.TrimSpace(name)), ".csv")
}
