package models

import (
	"database/sql/driver"
	"encoding/json"
)

// TagList is a JSON-encoded string slice column.
type TagList []string

// Scan implements sql.Scanner for TagList
func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}

	return json.Unmarshal(bytes, t)
}

// Value implements driver.Valuer for TagList
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return json.Marshal(t)
}
