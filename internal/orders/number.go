package orders

import (
	"strings"

	"github.com/google/uuid"
)

const numberPrefix = "TT-"

// Number derives the human-facing order number shown on invoices and order
// pages: the prefix plus the first eight hex characters of the order ID.
func Number(id uuid.UUID) string {
	compact := strings.ReplaceAll(id.String(), "-", "")
	if len(compact) > 8 {
		compact = compact[:8]
	}
	return numberPrefix + strings.ToUpper(compact)
}
