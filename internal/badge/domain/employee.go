package domain

import (
	appvalidation "github.com/allisson/qrbadge/internal/validation"
)

// EmployeeRecord represents the validated employee fields that make up a badge
// payload. Records are transient: they exist only for the duration of a
// generation request and are never persisted outside the resulting ciphertext.
type EmployeeRecord struct {
	// Name is the employee's full name (at least 2 characters after trimming).
	Name string
	// ID is the digits-only employee identifier.
	ID string
	// Department is the employee's department (at least 2 characters after trimming).
	Department string
	// Notes is optional free text, included in the payload only when non-empty.
	Notes string
}

// NewEmployeeRecord validates the raw field values and builds an EmployeeRecord.
//
// Rules are checked in order and short-circuit on the first failure:
//  1. name: at least 2 characters after trimming, else ErrInvalidName
//  2. id: digits only with no whitespace tolerance, else ErrInvalidID
//  3. department: at least 2 characters after trimming, else ErrInvalidDepartment
//
// minTwoChars is the shared rule for the name and department fields.
var minTwoChars = appvalidation.MinTrimmedLength{Min: 2}

// Field values are kept verbatim; validation never rewrites them.
func NewEmployeeRecord(name, id, department, notes string) (EmployeeRecord, error) {
	if err := minTwoChars.Validate(name); err != nil {
		return EmployeeRecord{}, ErrInvalidName
	}
	if err := appvalidation.Digits.Validate(id); err != nil {
		return EmployeeRecord{}, ErrInvalidID
	}
	if err := minTwoChars.Validate(department); err != nil {
		return EmployeeRecord{}, ErrInvalidDepartment
	}

	return EmployeeRecord{
		Name:       name,
		ID:         id,
		Department: department,
		Notes:      notes,
	}, nil
}
