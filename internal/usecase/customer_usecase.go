package usecase

import (
	"context"
	"sync"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
	"github.com/Fikriansyah-12/habitus-fe/internal/usecase/interfaces"
)

// ICustomerUseCase is the customer screen controller contract.
//
// Error propagation follows the console-wide policy: FetchAll swallows
// failures into ErrorMessage and keeps prior state, every other operation
// records ErrorMessage and returns the error so the caller can react.
type ICustomerUseCase interface {
	State() CustomerState
	FetchAll(ctx context.Context)
	FetchOne(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, data request.CreateCustomerRequest) (entities.Customer, error)
	Update(ctx context.Context, id string, data request.UpdateCustomerRequest) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, params map[string]string) (entities.Spreadsheet, error)
	ClearMessages()
	Reset()
}

// CustomerState is the observable screen state snapshot.
type CustomerState struct {
	Customers      []entities.Customer `json:"customers"`
	Current        *entities.Customer  `json:"currentCustomer"`
	TotalCustomers int                 `json:"totalCustomers"`
	IsLoading      bool                `json:"isLoading"`
	ErrorMessage   string              `json:"errorMessage"`
	SuccessMessage string              `json:"successMessage"`
}

// CustomerUseCase owns the in-memory customer list shown on the customer
// screens. Overlapping calls are not serialized: whichever resolves last
// wins when writing state.
type CustomerUseCase struct {
	client interfaces.ICustomerClient

	mu             sync.Mutex
	customers      []entities.Customer
	current        *entities.Customer
	isLoading      bool
	errorMessage   string
	successMessage string
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(client interfaces.ICustomerClient) *CustomerUseCase {
	return &CustomerUseCase{client: client}
}

func (u *CustomerUseCase) State() CustomerState {
	u.mu.Lock()
	defer u.mu.Unlock()
	state := CustomerState{
		Customers:      append([]entities.Customer(nil), u.customers...),
		TotalCustomers: len(u.customers),
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

// FetchAll replaces the list wholesale on success. On failure the previous
// list stays intact and the error is only observable via ErrorMessage.
func (u *CustomerUseCase) FetchAll(ctx context.Context) {
	u.begin()
	customers, err := u.client.FindAll(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return
	}
	u.customers = customers
}

func (u *CustomerUseCase) FetchOne(ctx context.Context, id string) (entities.Customer, error) {
	u.begin()
	customer, err := u.client.FindOne(ctx, id)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return entities.Customer{}, err
	}
	u.current = &customer
	return customer, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, data request.CreateCustomerRequest) (entities.Customer, error) {
	u.begin()
	created, err := u.client.Create(ctx, data)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return entities.Customer{}, err
	}
	u.customers = append(u.customers, created)
	u.successMessage = "Customer created successfully"
	return created, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, data request.UpdateCustomerRequest) (entities.Customer, error) {
	u.begin()
	updated, err := u.client.Update(ctx, id, data)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return entities.Customer{}, err
	}
	// Upsert-by-id: replace when present, otherwise leave the list alone.
	for i := range u.customers {
		if u.customers[i].ID == id {
			u.customers[i] = updated
			break
		}
	}
	if u.current != nil && u.current.ID == id {
		u.current = &updated
	}
	u.successMessage = "Customer updated successfully"
	return updated, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	u.begin()
	err := u.client.Delete(ctx, id)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return err
	}
	kept := u.customers[:0]
	for _, customer := range u.customers {
		if customer.ID != id {
			kept = append(kept, customer)
		}
	}
	u.customers = kept
	if u.current != nil && u.current.ID == id {
		u.current = nil
	}
	u.successMessage = "Customer deleted successfully"
	return nil
}

// Export relays the spreadsheet without touching screen state.
func (u *CustomerUseCase) Export(ctx context.Context, params map[string]string) (entities.Spreadsheet, error) {
	return u.client.ExportExcel(ctx, params)
}

func (u *CustomerUseCase) ClearMessages() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.errorMessage = ""
	u.successMessage = ""
}

// Reset clears everything; called when the operator leaves the customer
// screen area.
func (u *CustomerUseCase) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.customers = nil
	u.current = nil
	u.errorMessage = ""
	u.successMessage = ""
}

func (u *CustomerUseCase) begin() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = true
	u.errorMessage = ""
	u.successMessage = ""
}
