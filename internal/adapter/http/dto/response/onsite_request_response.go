package response

import (
	"encoding/json"
	"time"

	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
)

// OnsiteRequestResponse is the normalized onsite-request DTO. Canonical
// fields come straight from the backend; the legacy aliases (startDate,
// location, quoteNo, ...) are derived so older screens resolve the same
// logical values.
type OnsiteRequestResponse struct {
	ID            string                       `json:"id"`
	RequestedByID string                       `json:"requestedById"`
	Purpose       string                       `json:"purpose"`
	OnsiteAt      time.Time                    `json:"onsiteAt"`
	Address       string                       `json:"address"`
	QuoteID       string                       `json:"quoteId"`
	Status        entities.OnsiteStatus        `json:"status"`
	Items         []entities.OnsiteRequestItem `json:"items"`
	Quote         entities.QuoteRef            `json:"quote"`
	RequestedBy   entities.User                `json:"requestedBy"`
	CreatedAt     time.Time                    `json:"createdAt"`
	UpdatedAt     time.Time                    `json:"updatedAt"`

	// Legacy aliases.
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Location     string    `json:"location"`
	Notes        string    `json:"notes"`
	QuoteNo      string    `json:"quoteNo"`
	UserName     string    `json:"userName"`
	ItemName     string    `json:"itemName"`
	CustomerName string    `json:"customerName"`
}

// FromRawOnsiteRequest maps a raw backend onsite request into the normalized
// DTO. Presence of onsiteAt identifies the backend shape; anything else is
// treated as already normalized and passed through unchanged.
func FromRawOnsiteRequest(raw json.RawMessage) (OnsiteRequestResponse, error) {
	var r OnsiteRequestResponse
	if err := json.Unmarshal(raw, &r); err != nil {
		return OnsiteRequestResponse{}, err
	}
	if hasField(raw, "onsiteAt") {
		r.fillLegacyAliases()
	}
	if r.Items == nil {
		r.Items = []entities.OnsiteRequestItem{}
	}
	return r, nil
}

// FromRawOnsiteRequestList maps list elements one by one; a single response
// may mix raw and already-normalized items.
func FromRawOnsiteRequestList(items []json.RawMessage) ([]OnsiteRequestResponse, error) {
	requests := make([]OnsiteRequestResponse, 0, len(items))
	for _, item := range items {
		r, err := FromRawOnsiteRequest(item)
		if err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, nil
}

func (r *OnsiteRequestResponse) fillLegacyAliases() {
	r.StartDate = r.OnsiteAt
	r.EndDate = r.OnsiteAt
	r.Location = r.Address
	r.Notes = ""
	r.QuoteNo = r.Quote.QuoteNo
	r.UserName = r.RequestedBy.Name
	r.CustomerName = r.Quote.Customer.Name
	if len(r.Items) > 0 {
		r.ItemName = r.Items[0].Name
	} else {
		r.ItemName = ""
	}
}
