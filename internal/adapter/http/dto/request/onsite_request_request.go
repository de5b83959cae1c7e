package request

import (
	"time"

	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
)

type OnsiteRequestItemRequest struct {
	ItemID string `json:"itemId,omitempty"`
	Name   string `json:"name" binding:"required"`
	Qty    int    `json:"qty" binding:"required"`
}

// CreateOnsiteRequestRequest uses the backend's current field names
// (onsiteAt, address, quoteId); the legacy form names are translated before
// this point.
type CreateOnsiteRequestRequest struct {
	Purpose  string                     `json:"purpose" binding:"required"`
	OnsiteAt time.Time                  `json:"onsiteAt" binding:"required"`
	Address  string                     `json:"address" binding:"required"`
	QuoteID  string                     `json:"quoteId" binding:"required"`
	Items    []OnsiteRequestItemRequest `json:"items,omitempty"`
}

type UpdateOnsiteRequestRequest struct {
	Purpose  *string                     `json:"purpose,omitempty"`
	OnsiteAt *time.Time                  `json:"onsiteAt,omitempty"`
	Address  *string                     `json:"address,omitempty"`
	Items    *[]OnsiteRequestItemRequest `json:"items,omitempty"`
}

func (r UpdateOnsiteRequestRequest) Payload() map[string]any {
	payload := map[string]any{}
	if r.Purpose != nil {
		payload["purpose"] = *r.Purpose
	}
	if r.OnsiteAt != nil {
		payload["onsiteAt"] = *r.OnsiteAt
	}
	if r.Address != nil {
		payload["address"] = *r.Address
	}
	if r.Items != nil {
		payload["items"] = *r.Items
	}
	return payload
}

// UpdateOnsiteRequestStatusRequest submits a requested status; the backend
// decides whether the transition is valid.
type UpdateOnsiteRequestStatusRequest struct {
	Status   entities.OnsiteStatus `json:"status" binding:"required"`
	Metadata map[string]any        `json:"metadata,omitempty"`
}
