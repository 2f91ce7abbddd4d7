package models

import "time"

// Record is the capability set shared by every list resource. Concrete record
// types stay distinct; the list controller and derivation engine only ever see
// them through this interface.
type Record interface {
	// RecordID is unique and stable for the lifetime of the data source.
	RecordID() string
	// SearchFields returns the free-text fields. A nil value marks a missing
	// field, which search skips.
	SearchFields() map[string]*string
	// FilterFields returns the categorical filter dimensions.
	FilterFields() map[string]string
	// DateFields returns the nullable dates used for window classification.
	DateFields() map[string]*time.Time
}

// StatusRecord is a Record that follows the document workflow lifecycle.
type StatusRecord interface {
	Record
	WorkflowStatus() string
}

// strPtr returns nil for empty strings so search treats them as missing.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// IDs returns the ids of records in order.
func IDs[T Record](records []T) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.RecordID()
	}
	return ids
}
