package intake

import (
	"strings"

	"github.com/stonetrade/backend/internal/domain/shared"
)

// Kind distinguishes the intake record families that share one calculation shape
type Kind string

const (
	KindTodi       Kind = "todi"
	KindGala       Kind = "gala"
	KindTodiRaskat Kind = "todi_raskat"
)

// Kinds lists every intake kind
func Kinds() []Kind {
	return []Kind{KindTodi, KindGala, KindTodiRaskat}
}

// IsValid reports whether k is a known kind
func (k Kind) IsValid() bool {
	switch k {
	case KindTodi, KindGala, KindTodiRaskat:
		return true
	default:
		return false
	}
}

// ParseKind accepts the kind name or its URL slug ("todi-raskats" style)
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.TrimSuffix(normalized, "s")
	k := Kind(normalized)
	if !k.IsValid() {
		return "", shared.NewDomainError("INVALID_KIND", "Unknown intake kind: "+s)
	}
	return k, nil
}

// Slug is the plural path segment used for the kind's collection
func (k Kind) Slug() string {
	return strings.ReplaceAll(string(k), "_", "-") + "s"
}
