package response

import (
	"encoding/json"
	"testing"
)

func TestFromRawQuote(t *testing.T) {
	t.Run("backend shape fills legacy fields", func(t *testing.T) {
		raw := json.RawMessage(`{
			"id": "q-1",
			"quoteNo": "Q-2024-001",
			"customerId": "c-1",
			"customer": {"id": "c-1", "name": "PT Maju", "phone": "0812"},
			"items": [{"id": "i-1", "name": "Panel", "qty": 4, "quoteId": "q-1"}]
		}`)

		q, err := FromRawQuote(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ItemName != "Panel" || q.Quantity != 4 {
			t.Fatalf("legacy item fields not filled: %q %d", q.ItemName, q.Quantity)
		}
		if q.CustomerName != "PT Maju" || q.CustomerPhone != "0812" {
			t.Fatalf("legacy customer fields not filled: %q %q", q.CustomerName, q.CustomerPhone)
		}
	})

	t.Run("already normalized payload passes through", func(t *testing.T) {
		raw := json.RawMessage(`{
			"id": "q-1",
			"quoteNo": "Q-2024-001",
			"itemName": "Panel",
			"quantity": 4,
			"customerName": "PT Maju"
		}`)

		q, err := FromRawQuote(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ItemName != "Panel" || q.Quantity != 4 || q.CustomerName != "PT Maju" {
			t.Fatalf("passthrough mangled: %+v", q)
		}
	})

	t.Run("populated legacy value survives the backend shape", func(t *testing.T) {
		raw := json.RawMessage(`{
			"id": "q-1",
			"customer": {"id": "c-1"},
			"items": [],
			"itemName": "Keeps",
			"quantity": 7
		}`)

		q, err := FromRawQuote(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ItemName != "Keeps" || q.Quantity != 7 {
			t.Fatalf("legacy fallback lost: %q %d", q.ItemName, q.Quantity)
		}
	})

	t.Run("items never nil", func(t *testing.T) {
		q, err := FromRawQuote(json.RawMessage(`{"id":"q-1"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Items == nil {
			t.Fatal("expected empty items slice, got nil")
		}
	})
}

func TestFromRawQuoteList(t *testing.T) {
	t.Run("mixed shapes in one list", func(t *testing.T) {
		items := []json.RawMessage{
			json.RawMessage(`{"id":"q-1","customer":{"name":"A"},"items":[{"name":"X","qty":1}]}`),
			json.RawMessage(`{"id":"q-2","itemName":"Y","quantity":2}`),
		}

		quotes, err := FromRawQuoteList(items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(quotes))
		}
		if quotes[0].CustomerName != "A" || quotes[0].ItemName != "X" {
			t.Fatalf("first element not normalized: %+v", quotes[0])
		}
		if quotes[1].ItemName != "Y" || quotes[1].Quantity != 2 {
			t.Fatalf("second element mangled: %+v", quotes[1])
		}
	})

	t.Run("broken element fails the list", func(t *testing.T) {
		items := []json.RawMessage{json.RawMessage(`"not an object"`)}
		if _, err := FromRawQuoteList(items); err == nil {
			t.Fatal("expected error")
		}
	})
}
