package usecase

import (
	"context"
	"sync"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
	"github.com/Fikriansyah-12/habitus-fe/internal/usecase/interfaces"
)

// IQuoteUseCase is the quote screen controller contract.
type IQuoteUseCase interface {
	State() QuoteState
	FetchAll(ctx context.Context)
	FetchOne(ctx context.Context, id string) (response.QuoteResponse, error)
	FetchByQuoteNo(ctx context.Context, quoteNo string) (response.QuoteResponse, error)
	Create(ctx context.Context, data request.CreateQuoteRequest) (response.QuoteResponse, error)
	Update(ctx context.Context, id string, data request.UpdateQuoteRequest) (response.QuoteResponse, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, params map[string]string) (entities.Spreadsheet, error)
	ClearMessages()
	Reset()
}

type QuoteState struct {
	Quotes         []response.QuoteResponse `json:"quotes"`
	Current        *response.QuoteResponse  `json:"currentQuote"`
	TotalQuotes    int                      `json:"totalQuotes"`
	IsLoading      bool                     `json:"isLoading"`
	ErrorMessage   string                   `json:"errorMessage"`
	SuccessMessage string                   `json:"successMessage"`
}

type QuoteUseCase struct {
	client interfaces.IQuoteClient

	mu             sync.Mutex
	quotes         []response.QuoteResponse
	current        *response.QuoteResponse
	isLoading      bool
	errorMessage   string
	successMessage string
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(client interfaces.IQuoteClient) *QuoteUseCase {
	return &QuoteUseCase{client: client}
}

func (u *QuoteUseCase) State() QuoteState {
	u.mu.Lock()
	defer u.mu.Unlock()
	state := QuoteState{
		Quotes:         append([]response.QuoteResponse(nil), u.quotes...),
		TotalQuotes:    len(u.quotes),
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

func (u *QuoteUseCase) FetchAll(ctx context.Context) {
	u.begin()
	quotes, err := u.client.FindAll(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return
	}
	u.quotes = quotes
}

func (u *QuoteUseCase) FetchOne(ctx context.Context, id string) (response.QuoteResponse, error) {
	u.begin()
	quote, err := u.client.FindOne(ctx, id)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return response.QuoteResponse{}, err
	}
	u.current = &quote
	return quote, nil
}

// FetchByQuoteNo resolves a quote by its human-readable number, used by the
// onsite-request form to link a quote.
func (u *QuoteUseCase) FetchByQuoteNo(ctx context.Context, quoteNo string) (response.QuoteResponse, error) {
	u.begin()
	quote, err := u.client.FindByQuoteNo(ctx, quoteNo)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return response.QuoteResponse{}, err
	}
	u.current = &quote
	return quote, nil
}

func (u *QuoteUseCase) Create(ctx context.Context, data request.CreateQuoteRequest) (response.QuoteResponse, error) {
	u.begin()
	created, err := u.client.Create(ctx, data)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return response.QuoteResponse{}, err
	}
	u.quotes = append(u.quotes, created)
	u.successMessage = "Quote created successfully"
	return created, nil
}

func (u *QuoteUseCase) Update(ctx context.Context, id string, data request.UpdateQuoteRequest) (response.QuoteResponse, error) {
	u.begin()
	updated, err := u.client.Update(ctx, id, data)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return response.QuoteResponse{}, err
	}
	for i := range u.quotes {
		if u.quotes[i].ID == id {
			u.quotes[i] = updated
			break
		}
	}
	if u.current != nil && u.current.ID == id {
		u.current = &updated
	}
	u.successMessage = "Quote updated successfully"
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	u.begin()
	err := u.client.Delete(ctx, id)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return err
	}
	kept := u.quotes[:0]
	for _, quote := range u.quotes {
		if quote.ID != id {
			kept = append(kept, quote)
		}
	}
	u.quotes = kept
	if u.current != nil && u.current.ID == id {
		u.current = nil
	}
	u.successMessage = "Quote deleted successfully"
	return nil
}

func (u *QuoteUseCase) Export(ctx context.Context, params map[string]string) (entities.Spreadsheet, error) {
	return u.client.ExportExcel(ctx, params)
}

func (u *QuoteUseCase) ClearMessages() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.errorMessage = ""
	u.successMessage = ""
}

func (u *QuoteUseCase) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.quotes = nil
	u.current = nil
	u.errorMessage = ""
	u.successMessage = ""
}

func (u *QuoteUseCase) begin() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = true
	u.errorMessage = ""
	u.successMessage = ""
}
