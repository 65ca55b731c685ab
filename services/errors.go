package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError rejects a write before it reaches the database. Fields
// lists what was missing or out of range; the message is returned verbatim
// in the 400 body.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func requiredFieldsError(fields ...string) *ValidationError {
	msg := fields[0] + " is required"
	if len(fields) > 1 {
		msg = strings.Join(fields[:len(fields)-1], ", ") + ", and " + fields[len(fields)-1] + " are required"
	}
	return &ValidationError{
		Message: msg,
		Fields:  fields,
	}
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// sanitizeUpdate prepares a partial-update payload: server-managed columns
// are never client-writable, and slice values (highlights, tags, ...) are
// re-encoded as JSON text so the driver can write them into JSON columns.
func sanitizeUpdate(fields map[string]interface{}) map[string]interface{} {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")

	for key, value := range fields {
		if _, ok := value.([]interface{}); ok {
			if encoded, err := json.Marshal(value); err == nil {
				fields[key] = string(encoded)
			}
		}
	}
	return fields
}

// stripEmptyStrings drops empty-string values so a partial update leaves the
// stored field untouched instead of blanking it.
func stripEmptyStrings(fields map[string]interface{}) map[string]interface{} {
	for key, value := range fields {
		if s, ok := value.(string); ok && s == "" {
			delete(fields, key)
		}
	}
	return fields
}
