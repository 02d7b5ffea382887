package service

import (
	"fmt"
	"strings"

	"github.com/allisson/qrbadge/internal/badge/domain"
)

// Canonical payload field labels.
//
// These Arabic labels and their ordering are the plaintext compatibility
// surface: any consumer decrypting the envelope parses this exact format.
// Do not change them.
const (
	labelName       = "الاسم: "
	labelID         = "الرقم الوظيفي: "
	labelDepartment = "القسم: "
	labelNotes      = "معلومات إضافية: "
)

// LabeledPayloadCodec implements PayloadCodec with the fixed labeled-line format:
//
//	<name label><name>\n<id label><id>\n<department label><department>
//
// with a fourth notes line appended only when notes is non-empty.
type LabeledPayloadCodec struct{}

// NewLabeledPayloadCodec creates the canonical payload codec.
func NewLabeledPayloadCodec() *LabeledPayloadCodec {
	return &LabeledPayloadCodec{}
}

// Serialize produces the canonical plaintext for a record.
func (c *LabeledPayloadCodec) Serialize(record domain.EmployeeRecord) string {
	var b strings.Builder
	b.WriteString(labelName)
	b.WriteString(record.Name)
	b.WriteString("\n")
	b.WriteString(labelID)
	b.WriteString(record.ID)
	b.WriteString("\n")
	b.WriteString(labelDepartment)
	b.WriteString(record.Department)
	if record.Notes != "" {
		b.WriteString("\n")
		b.WriteString(labelNotes)
		b.WriteString(record.Notes)
	}
	return b.String()
}

// Deserialize parses canonical plaintext back into an EmployeeRecord.
//
// The first three lines must carry the name, id, and department labels in
// order. Everything after the notes label on the fourth line, including
// embedded newlines, belongs to the notes field.
func (c *LabeledPayloadCodec) Deserialize(payload string) (domain.EmployeeRecord, error) {
	lines := strings.Split(payload, "\n")
	if len(lines) < 3 {
		return domain.EmployeeRecord{}, fmt.Errorf(
			"%w: expected at least 3 lines, got %d",
			domain.ErrInvalidPayloadFormat,
			len(lines),
		)
	}

	name, err := cutLabel(lines[0], labelName)
	if err != nil {
		return domain.EmployeeRecord{}, err
	}
	id, err := cutLabel(lines[1], labelID)
	if err != nil {
		return domain.EmployeeRecord{}, err
	}
	department, err := cutLabel(lines[2], labelDepartment)
	if err != nil {
		return domain.EmployeeRecord{}, err
	}

	var notes string
	if len(lines) > 3 {
		// Notes may span multiple lines; only the first carries the label.
		notes, err = cutLabel(strings.Join(lines[3:], "\n"), labelNotes)
		if err != nil {
			return domain.EmployeeRecord{}, err
		}
	}

	return domain.EmployeeRecord{
		Name:       name,
		ID:         id,
		Department: department,
		Notes:      notes,
	}, nil
}

// cutLabel strips the expected label prefix from a line.
func cutLabel(line, label string) (string, error) {
	value, found := strings.CutPrefix(line, label)
	if !found {
		return "", fmt.Errorf("%w: missing label %q", domain.ErrInvalidPayloadFormat, strings.TrimSuffix(label, ": "))
	}
	return value, nil
}
