package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/qrbadge/internal/badge/domain"
)

func TestLabeledPayloadCodec_Serialize(t *testing.T) {
	codec := NewLabeledPayloadCodec()

	t.Run("three labeled lines without notes", func(t *testing.T) {
		record := domain.EmployeeRecord{
			Name:       "محمد علي",
			ID:         "12345",
			Department: "تقنية المعلومات",
		}

		payload := codec.Serialize(record)
		lines := strings.Split(payload, "\n")

		require.Len(t, lines, 3)
		assert.Equal(t, "الاسم: محمد علي", lines[0])
		assert.Equal(t, "الرقم الوظيفي: 12345", lines[1])
		assert.Equal(t, "القسم: تقنية المعلومات", lines[2])
	})

	t.Run("fourth line only when notes non-empty", func(t *testing.T) {
		record := domain.EmployeeRecord{
			Name:       "Jane Doe",
			ID:         "42",
			Department: "HR",
			Notes:      "night shift",
		}

		payload := codec.Serialize(record)
		lines := strings.Split(payload, "\n")

		require.Len(t, lines, 4)
		assert.Equal(t, "معلومات إضافية: night shift", lines[3])
	})
}

func TestLabeledPayloadCodec_Deserialize(t *testing.T) {
	codec := NewLabeledPayloadCodec()

	t.Run("round-trips a record without notes", func(t *testing.T) {
		original := domain.EmployeeRecord{
			Name:       "محمد علي",
			ID:         "12345",
			Department: "تقنية المعلومات",
		}

		parsed, err := codec.Deserialize(codec.Serialize(original))
		assert.NoError(t, err)
		assert.Equal(t, original, parsed)
	})

	t.Run("round-trips a record with notes", func(t *testing.T) {
		original := domain.EmployeeRecord{
			Name:       "Jane Doe",
			ID:         "42",
			Department: "HR",
			Notes:      "night shift",
		}

		parsed, err := codec.Deserialize(codec.Serialize(original))
		assert.NoError(t, err)
		assert.Equal(t, original, parsed)
	})

	t.Run("round-trips multiline notes", func(t *testing.T) {
		original := domain.EmployeeRecord{
			Name:       "Jane Doe",
			ID:         "42",
			Department: "HR",
			Notes:      "line one\nline two",
		}

		parsed, err := codec.Deserialize(codec.Serialize(original))
		assert.NoError(t, err)
		assert.Equal(t, original, parsed)
	})

	t.Run("rejects too few lines", func(t *testing.T) {
		_, err := codec.Deserialize("الاسم: x\nالرقم الوظيفي: 1")
		assert.ErrorIs(t, err, domain.ErrInvalidPayloadFormat)
	})

	t.Run("rejects wrong label order", func(t *testing.T) {
		payload := "الرقم الوظيفي: 1\nالاسم: x\nالقسم: yy"
		_, err := codec.Deserialize(payload)
		assert.ErrorIs(t, err, domain.ErrInvalidPayloadFormat)
	})

	t.Run("rejects unlabeled notes line", func(t *testing.T) {
		payload := "الاسم: x\nالرقم الوظيفي: 1\nالقسم: yy\nno label here"
		_, err := codec.Deserialize(payload)
		assert.ErrorIs(t, err, domain.ErrInvalidPayloadFormat)
	})
}
