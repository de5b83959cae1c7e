package usecase

import (
	"context"
	"sync"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
	"github.com/Fikriansyah-12/habitus-fe/internal/usecase/interfaces"
)

// IOnsiteRequestUseCase is the onsite-request screen controller contract.
type IOnsiteRequestUseCase interface {
	State() OnsiteRequestState
	FetchAll(ctx context.Context, filters map[string]string)
	FetchOne(ctx context.Context, id string) (response.OnsiteRequestResponse, error)
	Create(ctx context.Context, data request.CreateOnsiteRequestRequest) (response.OnsiteRequestResponse, error)
	Update(ctx context.Context, id string, data request.UpdateOnsiteRequestRequest) (response.OnsiteRequestResponse, error)
	UpdateStatus(ctx context.Context, id string, data request.UpdateOnsiteRequestStatusRequest) (response.OnsiteRequestResponse, error)
	Delete(ctx context.Context, id string) error
	FetchLogs(ctx context.Context, id, action string)
	FetchTimeline(ctx context.Context, id string)
	Statistics(ctx context.Context) (entities.OnsiteRequestStatistics, error)
	Export(ctx context.Context, params map[string]string) (entities.Spreadsheet, error)
	ClearMessages()
	Reset()
}

type OnsiteRequestState struct {
	Requests       []response.OnsiteRequestResponse `json:"requests"`
	Current        *response.OnsiteRequestResponse  `json:"currentRequest"`
	Logs           []entities.OnsiteRequestLog      `json:"requestLogs"`
	TotalRequests  int                              `json:"totalRequests"`
	IsLoading      bool                             `json:"isLoading"`
	ErrorMessage   string                           `json:"errorMessage"`
	SuccessMessage string                           `json:"successMessage"`
}

// OnsiteRequestUseCase owns the onsite-request list. Unlike the other
// controllers it prepends newly created requests so the list stays
// newest-first, matching the request screens.
type OnsiteRequestUseCase struct {
	client interfaces.IOnsiteRequestClient

	mu             sync.Mutex
	requests       []response.OnsiteRequestResponse
	current        *response.OnsiteRequestResponse
	logs           []entities.OnsiteRequestLog
	total          int
	isLoading      bool
	errorMessage   string
	successMessage string
}

var _ IOnsiteRequestUseCase = (*OnsiteRequestUseCase)(nil)

func NewOnsiteRequestUseCase(client interfaces.IOnsiteRequestClient) *OnsiteRequestUseCase {
	return &OnsiteRequestUseCase{client: client}
}

func (u *OnsiteRequestUseCase) State() OnsiteRequestState {
	u.mu.Lock()
	defer u.mu.Unlock()
	total := u.total
	if total == 0 {
		total = len(u.requests)
	}
	state := OnsiteRequestState{
		Requests:       append([]response.OnsiteRequestResponse(nil), u.requests...),
		Logs:           append([]entities.OnsiteRequestLog(nil), u.logs...),
		TotalRequests:  total,
		IsLoading:      u.isLoading,
		ErrorMessage:   u.errorMessage,
		SuccessMessage: u.successMessage,
	}
	if u.current != nil {
		current := *u.current
		state.Current = &current
	}
	return state
}

func (u *OnsiteRequestUseCase) FetchAll(ctx context.Context, filters map[string]string) {
	u.begin()
	requests, total, err := u.client.FindAll(ctx, filters)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return
	}
	u.requests = requests
	u.total = total
}

func (u *OnsiteRequestUseCase) FetchOne(ctx context.Context, id string) (response.OnsiteRequestResponse, error) {
	u.begin()
	req, err := u.client.FindOne(ctx, id)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return response.OnsiteRequestResponse{}, err
	}
	u.current = &req
	return req, nil
}

func (u *OnsiteRequestUseCase) Create(ctx context.Context, data request.CreateOnsiteRequestRequest) (response.OnsiteRequestResponse, error) {
	u.begin()
	created, err := u.client.Create(ctx, data)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return response.OnsiteRequestResponse{}, err
	}
	// Newest first.
	u.requests = append([]response.OnsiteRequestResponse{created}, u.requests...)
	u.successMessage = "Onsite request created successfully"
	return created, nil
}

func (u *OnsiteRequestUseCase) Update(ctx context.Context, id string, data request.UpdateOnsiteRequestRequest) (response.OnsiteRequestResponse, error) {
	u.begin()
	updated, err := u.client.Update(ctx, id, data)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return response.OnsiteRequestResponse{}, err
	}
	u.applyUpdate(id, updated)
	u.successMessage = "Onsite request updated successfully"
	return updated, nil
}

func (u *OnsiteRequestUseCase) UpdateStatus(ctx context.Context, id string, data request.UpdateOnsiteRequestStatusRequest) (response.OnsiteRequestResponse, error) {
	u.begin()
	updated, err := u.client.UpdateStatus(ctx, id, data)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return response.OnsiteRequestResponse{}, err
	}
	u.applyUpdate(id, updated)
	u.successMessage = "Status updated successfully"
	return updated, nil
}

func (u *OnsiteRequestUseCase) Delete(ctx context.Context, id string) error {
	u.begin()
	err := u.client.Delete(ctx, id)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return err
	}
	kept := u.requests[:0]
	for _, req := range u.requests {
		if req.ID != id {
			kept = append(kept, req)
		}
	}
	u.requests = kept
	if u.current != nil && u.current.ID == id {
		u.current = nil
	}
	u.successMessage = "Onsite request deleted successfully"
	return nil
}

// FetchLogs loads audit entries into the logs slice. Failures surface only
// through ErrorMessage; the detail screen degrades to an empty timeline.
func (u *OnsiteRequestUseCase) FetchLogs(ctx context.Context, id, action string) {
	logs, err := u.client.Logs(ctx, id, action)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		u.errorMessage = err.Error()
		return
	}
	u.logs = logs
}

func (u *OnsiteRequestUseCase) FetchTimeline(ctx context.Context, id string) {
	logs, err := u.client.Timeline(ctx, id)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		u.errorMessage = err.Error()
		return
	}
	u.logs = logs
}

// Statistics is a passthrough for the dashboard; it does not touch the
// request list state.
func (u *OnsiteRequestUseCase) Statistics(ctx context.Context) (entities.OnsiteRequestStatistics, error) {
	return u.client.Statistics(ctx)
}

func (u *OnsiteRequestUseCase) Export(ctx context.Context, params map[string]string) (entities.Spreadsheet, error) {
	return u.client.ExportExcel(ctx, params)
}

func (u *OnsiteRequestUseCase) ClearMessages() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.errorMessage = ""
	u.successMessage = ""
}

func (u *OnsiteRequestUseCase) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.requests = nil
	u.current = nil
	u.logs = nil
	u.total = 0
	u.errorMessage = ""
	u.successMessage = ""
}

func (u *OnsiteRequestUseCase) applyUpdate(id string, updated response.OnsiteRequestResponse) {
	for i := range u.requests {
		if u.requests[i].ID == id {
			u.requests[i] = updated
			break
		}
	}
	if u.current != nil && u.current.ID == id {
		u.current = &updated
	}
}

func (u *OnsiteRequestUseCase) begin() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = true
	u.errorMessage = ""
	u.successMessage = ""
}
