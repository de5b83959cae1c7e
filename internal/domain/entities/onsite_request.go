package entities

import "time"

// OnsiteStatus is the lifecycle of an onsite request. Transitions are
// authoritative server-side; the console only submits a requested status.
type OnsiteStatus string

const (
	OnsiteStatusRequested OnsiteStatus = "REQUESTED"
	OnsiteStatusApproved  OnsiteStatus = "APPROVED"
	OnsiteStatusRejected  OnsiteStatus = "REJECTED"
)

// RequestPurpose is the fixed set of visit purposes accepted by the backend.
type RequestPurpose string

const (
	PurposePenawaranBarang RequestPurpose = "Penawaran Barang"
	PurposeMeeting         RequestPurpose = "Meeting"
	PurposeSurvey          RequestPurpose = "Survey"
	PurposeDokumentasi     RequestPurpose = "Dokumentasi"
)

// RequestPurposes lists every valid purpose, in the order shown on the
// request form.
func RequestPurposes() []RequestPurpose {
	return []RequestPurpose{PurposePenawaranBarang, PurposeMeeting, PurposeSurvey, PurposeDokumentasi}
}

// OnsiteRequest is the frontend-canonical onsite service request shape.
type OnsiteRequest struct {
	ID            string              `json:"id"`
	RequestedByID string              `json:"requestedById"`
	RequestedBy   User                `json:"requestedBy"`
	Purpose       string              `json:"purpose"`
	OnsiteAt      time.Time           `json:"onsiteAt"`
	Address       string              `json:"address"`
	QuoteID       string              `json:"quoteId"`
	Quote         QuoteRef            `json:"quote"`
	Items         []OnsiteRequestItem `json:"items"`
	Status        OnsiteStatus        `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type OnsiteRequestItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	RequestID string `json:"requestId"`
}

// LogAction discriminates audit log entries on an onsite request.
type LogAction string

const (
	LogActionCreated       LogAction = "CREATED"
	LogActionStatusChanged LogAction = "STATUS_CHANGED"
	LogActionItemsUpdated  LogAction = "ITEMS_UPDATED"
	LogActionUpdated       LogAction = "UPDATED"
)

// OnsiteRequestLog is an append-only audit entry. The backend returns
// timeline entries ordered by timestamp ascending.
type OnsiteRequestLog struct {
	ID          string         `json:"id"`
	RequestID   string         `json:"requestId"`
	Action      LogAction      `json:"action"`
	ChangedByID string         `json:"changedById"`
	ChangedBy   User           `json:"changedBy"`
	Description string         `json:"description"`
	OldStatus   OnsiteStatus   `json:"oldStatus,omitempty"`
	NewStatus   OnsiteStatus   `json:"newStatus,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// OnsiteRequestStatistics is the aggregate shown on the dashboard.
type OnsiteRequestStatistics struct {
	Total     int `json:"total"`
	Requested int `json:"requested"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
}

// Spreadsheet is an opaque export payload relayed to the operator without
// inspection.
type Spreadsheet struct {
	ContentType string
	Content     []byte
}
