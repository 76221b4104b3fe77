package gorm

import (
	"errors"

	stdgorm "gorm.io/gorm"
)

func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, stdgorm.ErrRecordNotFound)
}

func IsFoundButHasErrors(err error) bool {
	if err == nil {
		return false
	}

	return !errors.Is(err, stdgorm.ErrRecordNotFound)
}

// HasDbIssues reports whether the given query error needs handling,
// not-found included.
func HasDbIssues(err error) bool {
	return IsNotFound(err) || IsFoundButHasErrors(err)
}
