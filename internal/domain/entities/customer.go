package entities

import "time"

// Customer is the frontend-canonical customer shape.
//
// Invariants:
//   - ID is assigned by the backend and never changes afterwards.
//   - Name and Phone are required non-empty strings (enforced at the request
//     DTO boundary; the backend is the final authority).
type Customer struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Quotes    []QuoteSummary `json:"quotes,omitempty"`
}

// QuoteSummary is the trimmed quote shape the backend embeds in customer
// payloads.
type QuoteSummary struct {
	ID         string    `json:"id"`
	QuoteNo    string    `json:"quoteNo"`
	CustomerID string    `json:"customerId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CustomerRef is the customer snapshot embedded in quote and onsite-request
// payloads. Consumers expect it to always be an object, never absent.
type CustomerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
