package entities

import "time"

// QuoteLine is one priced item of an exported quote.
type QuoteLine struct {
	Position int      `json:"position"`
	Item     LineItem `json:"item"`
	Price    float64  `json:"price"`
}

// QuoteExport is the finalized snapshot handed to document generation.
//
// Lines keep the store's insertion order and Total always equals the sum of
// the line prices.
type QuoteExport struct {
	Contact      ContactInfo `json:"contact"`
	Lines        []QuoteLine `json:"lines"`
	Total        float64     `json:"total"`
	IssuedAt     time.Time   `json:"issued_at"`
	ValidityDays int         `json:"validity_days"`
	Locale       string      `json:"locale"`
}

// FileName is the download name of the quote document.
func (q QuoteExport) FileName() string {
	return "quote_" + q.IssuedAt.Format("2006-01-02") + ".pdf"
}

// QuoteDocument is the rendered quote.
type QuoteDocument struct {
	FileName    string
	ContentType string
	Content     []byte
}
