package repositories

import "errors"

// ErrNotFound is returned by every implementation when the requested row does
// not exist. It is a caller-facing outcome, never a trigger for the gateway's
// mock fallback.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a write violates a uniqueness constraint,
// e.g. the (business_id, title_key) index on tasks. Expected during
// overlapping generation runs.
var ErrDuplicate = errors.New("duplicate record")
