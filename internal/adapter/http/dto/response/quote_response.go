package response

import (
	"encoding/json"
	"time"

	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
)

// QuoteResponse is the normalized quote DTO. It carries the canonical nested
// shape and the legacy flat fields side by side so screens written against
// either naming keep working.
type QuoteResponse struct {
	ID         string               `json:"id"`
	QuoteNo    string               `json:"quoteNo"`
	CustomerID string               `json:"customerId"`
	Customer   entities.CustomerRef `json:"customer"`
	Items      []entities.QuoteItem `json:"items"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`

	// Legacy flat fields.
	ItemName      string `json:"itemName"`
	Quantity      int    `json:"quantity"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// FromRawQuote maps a raw backend quote into the normalized DTO. Presence of
// the nested customer object identifies the backend shape; payloads already
// in frontend shape pass through unchanged.
func FromRawQuote(raw json.RawMessage) (QuoteResponse, error) {
	var q QuoteResponse
	if err := json.Unmarshal(raw, &q); err != nil {
		return QuoteResponse{}, err
	}
	if hasField(raw, "customer") {
		q.fillLegacyFields()
	}
	if q.Items == nil {
		q.Items = []entities.QuoteItem{}
	}
	return q, nil
}

// FromRawQuoteList maps list elements one by one; raw and already-normalized
// elements may be mixed in a single response.
func FromRawQuoteList(items []json.RawMessage) ([]QuoteResponse, error) {
	quotes := make([]QuoteResponse, 0, len(items))
	for _, item := range items {
		q, err := FromRawQuote(item)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// fillLegacyFields resolves each legacy alias from the canonical nested
// shape, keeping an already-populated legacy value as fallback.
func (q *QuoteResponse) fillLegacyFields() {
	if q.ItemName == "" && len(q.Items) > 0 {
		q.ItemName = q.Items[0].Name
	}
	if q.Quantity == 0 && len(q.Items) > 0 {
		q.Quantity = q.Items[0].Qty
	}
	if q.Customer.Name != "" {
		q.CustomerName = q.Customer.Name
	}
	if q.Customer.Phone != "" {
		q.CustomerPhone = q.Customer.Phone
	}
}
