package services

import (
	"errors"
	"strings"
)

// Error taxonomy shared by all services. Controllers map these onto HTTP
// statuses at the request boundary.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("not authorized")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
)

// checkOwner is the single ownership predicate: every mutating operation on
// an owned record funnels through it.
func checkOwner(callerID, ownerID uint) error {
	if callerID != ownerID {
		return ErrUnauthorized
	}
	return nil
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}
