package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployeeRecord(t *testing.T) {
	tests := []struct {
		name       string
		rawName    string
		rawID      string
		rawDept    string
		notes      string
		wantErr    error
	}{
		{
			name:    "valid record",
			rawName: "محمد علي",
			rawID:   "12345",
			rawDept: "تقنية المعلومات",
		},
		{
			name:    "valid record with notes",
			rawName: "Jane Doe",
			rawID:   "42",
			rawDept: "HR",
			notes:   "night shift",
		},
		{
			name:    "name too short",
			rawName: "a",
			rawID:   "12345",
			rawDept: "HR",
			wantErr: ErrInvalidName,
		},
		{
			name:    "name only whitespace",
			rawName: "   ",
			rawID:   "12345",
			rawDept: "HR",
			wantErr: ErrInvalidName,
		},
		{
			name:    "id with letter",
			rawName: "Jane Doe",
			rawID:   "12A45",
			rawDept: "HR",
			wantErr: ErrInvalidID,
		},
		{
			name:    "id with whitespace",
			rawName: "Jane Doe",
			rawID:   " 12345",
			rawDept: "HR",
			wantErr: ErrInvalidID,
		},
		{
			name:    "empty id",
			rawName: "Jane Doe",
			rawID:   "",
			rawDept: "HR",
			wantErr: ErrInvalidID,
		},
		{
			name:    "department too short",
			rawName: "Jane Doe",
			rawID:   "12345",
			rawDept: "x",
			wantErr: ErrInvalidDepartment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := NewEmployeeRecord(tt.rawName, tt.rawID, tt.rawDept, tt.notes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.rawName, record.Name)
			assert.Equal(t, tt.rawID, record.ID)
			assert.Equal(t, tt.rawDept, record.Department)
			assert.Equal(t, tt.notes, record.Notes)
		})
	}

	t.Run("name checked before id", func(t *testing.T) {
		// Both name and id are invalid; the name error must win.
		_, err := NewEmployeeRecord("", "12A45", "HR", "")
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("id checked before department", func(t *testing.T) {
		_, err := NewEmployeeRecord("Jane Doe", "bad", "x", "")
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}
