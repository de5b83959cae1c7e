package request

type QuoteItemRequest struct {
	Name string `json:"name" binding:"required"`
	Qty  int    `json:"qty" binding:"required"`
}

// CreateQuoteRequest mirrors the quote form. The backend rejects unknown
// fields on some deployments, so Payload keeps the body sparse.
type CreateQuoteRequest struct {
	QuoteNo    string             `json:"quoteNo" binding:"required"`
	CustomerID string             `json:"customerId" binding:"required"`
	Items      []QuoteItemRequest `json:"items"`
}

func (r CreateQuoteRequest) Payload() map[string]any {
	payload := map[string]any{}
	if r.QuoteNo != "" {
		payload["quoteNo"] = r.QuoteNo
	}
	if r.CustomerID != "" {
		payload["customerId"] = r.CustomerID
	}
	if len(r.Items) > 0 {
		items := make([]map[string]any, 0, len(r.Items))
		for _, item := range r.Items {
			items = append(items, map[string]any{"name": item.Name, "qty": item.Qty})
		}
		payload["items"] = items
	}
	return payload
}

type UpdateQuoteRequest struct {
	QuoteNo    *string             `json:"quoteNo,omitempty"`
	CustomerID *string             `json:"customerId,omitempty"`
	Items      *[]QuoteItemRequest `json:"items,omitempty"`
}

func (r UpdateQuoteRequest) Payload() map[string]any {
	payload := map[string]any{}
	if r.QuoteNo != nil {
		payload["quoteNo"] = *r.QuoteNo
	}
	if r.CustomerID != nil {
		payload["customerId"] = *r.CustomerID
	}
	if r.Items != nil {
		payload["items"] = *r.Items
	}
	return payload
}
