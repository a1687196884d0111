package shared

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONSlice persists a slice as a single JSON document column.
// A nil slice is stored as an empty array so reads never yield null.
type JSONSlice[T any] []T

// Value implements driver.Valuer
func (s JSONSlice[T]) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]T(s))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON column: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (s *JSONSlice[T]) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*s = JSONSlice[T]{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONSlice", value)
	}
	if len(data) == 0 || string(data) == "null" {
		*s = JSONSlice[T]{}
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to unmarshal JSON column: %w", err)
	}
	*s = items
	return nil
}
