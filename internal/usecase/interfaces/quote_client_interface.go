package interfaces

import (
	"context"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
)

//go:generate mockgen -source=quote_client_interface.go -destination=mocks/quote_client_mock.go -package=mock_interfaces

// IQuoteClient abstracts the backend /quotes endpoints. Results are
// normalized quote DTOs.
type IQuoteClient interface {
	Create(ctx context.Context, data request.CreateQuoteRequest) (response.QuoteResponse, error)
	FindAll(ctx context.Context) ([]response.QuoteResponse, error)
	FindOne(ctx context.Context, id string) (response.QuoteResponse, error)
	FindByQuoteNo(ctx context.Context, quoteNo string) (response.QuoteResponse, error)
	Update(ctx context.Context, id string, data request.UpdateQuoteRequest) (response.QuoteResponse, error)
	Delete(ctx context.Context, id string) error
	ExportExcel(ctx context.Context, params map[string]string) (entities.Spreadsheet, error)
}
