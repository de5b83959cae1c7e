package interfaces

import (
	"context"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
)

//go:generate mockgen -source=customer_client_interface.go -destination=mocks/customer_client_mock.go -package=mock_interfaces

// ICustomerClient abstracts the backend /customers endpoints.
type ICustomerClient interface {
	Create(ctx context.Context, data request.CreateCustomerRequest) (entities.Customer, error)
	FindAll(ctx context.Context) ([]entities.Customer, error)
	FindOne(ctx context.Context, id string) (entities.Customer, error)
	Update(ctx context.Context, id string, data request.UpdateCustomerRequest) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
	ExportExcel(ctx context.Context, params map[string]string) (entities.Spreadsheet, error)
}
