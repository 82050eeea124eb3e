package interfaces

import (
	"context"

	"mvz_quote/internal/domain/entities"
)

// IQuoteDocumentRenderer turns a finalized quote into a downloadable document.
type IQuoteDocumentRenderer interface {
	Render(ctx context.Context, q entities.QuoteExport) (entities.QuoteDocument, error)
}
