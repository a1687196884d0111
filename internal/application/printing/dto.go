package printing

import (
	"strings"
	"time"

	"github.com/stonetrade/backend/internal/domain/shared"
)

// Format selects how a statement is returned
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// ParseFormat parses a format query value. Empty means PDF.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", shared.NewDomainError("INVALID_FORMAT", "Format must be pdf or html")
	}
}

// Document is a rendered statement ready to send or store
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
	PageCount   int
}

// ArchiveResponse points at a stored statement
type ArchiveResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	Size      int       `json:"size"`
}
