package domain

import (
	"fmt"
	"time"
)

// QRArtifact is a rendered, in-memory QR image for one generation request.
// Artifacts are immutable; the next generation supersedes rather than mutates.
type QRArtifact struct {
	// EmployeeID is the identifier the output filename derives from.
	EmployeeID string
	// Envelope is the exact payload text embedded in the symbol.
	Envelope string
	// PNG is the rasterized image, PNG-encoded.
	PNG []byte
	// Size is the pixel width/height of the raster.
	Size int
	// Foreground and Background record the colors the symbol was rendered with.
	Foreground string
	Background string
	// CreatedAt is the UTC timestamp of the generation request.
	CreatedAt time.Time
	// SavedPath is the file the artifact was auto-saved to, empty when the
	// artifact exists only in memory (auto-save off or failed).
	SavedPath string
}

// Filename returns the deterministic output filename for the artifact.
func (a QRArtifact) Filename() string {
	return fmt.Sprintf("qr_code_%s.png", a.EmployeeID)
}
