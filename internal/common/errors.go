// Package common defines shared sentinel errors and small helpers used across
// the Aroma client layers. Callers should use errors.Is to match these values.
package common

import "errors"

// Storage-level errors.
var (
	ErrorUpdateConflict  = errors.New("concurrent update conflict")
	ErrorUnknownBackend  = errors.New("unknown storage backend")
	ErrorCorruptedRecord = errors.New("corrupted record")
)
