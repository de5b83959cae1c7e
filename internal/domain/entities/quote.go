package entities

import "time"

// Quote is the frontend-canonical quote shape.
//
// QuoteNo is the human-readable identifier; uniqueness is enforced
// server-side. Items belong to exactly one quote.
type Quote struct {
	ID         string      `json:"id"`
	QuoteNo    string      `json:"quoteNo"`
	CustomerID string      `json:"customerId"`
	Customer   CustomerRef `json:"customer"`
	Items      []QuoteItem `json:"items"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

type QuoteItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Qty     int    `json:"qty"`
	QuoteID string `json:"quoteId"`
}

// QuoteRef is the quote snapshot embedded in onsite-request payloads.
type QuoteRef struct {
	ID         string      `json:"id"`
	QuoteNo    string      `json:"quoteNo"`
	CustomerID string      `json:"customerId"`
	Customer   CustomerRef `json:"customer"`
	Items      []QuoteItem `json:"items"`
}
