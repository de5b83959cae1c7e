package interfaces

import (
	"context"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
)

//go:generate mockgen -source=onsite_request_client_interface.go -destination=mocks/onsite_request_client_mock.go -package=mock_interfaces

// IOnsiteRequestClient abstracts the backend /onsite-requests endpoints.
type IOnsiteRequestClient interface {
	Create(ctx context.Context, data request.CreateOnsiteRequestRequest) (response.OnsiteRequestResponse, error)
	FindAll(ctx context.Context, filters map[string]string) ([]response.OnsiteRequestResponse, int, error)
	FindOne(ctx context.Context, id string) (response.OnsiteRequestResponse, error)
	Update(ctx context.Context, id string, data request.UpdateOnsiteRequestRequest) (response.OnsiteRequestResponse, error)
	UpdateStatus(ctx context.Context, id string, data request.UpdateOnsiteRequestStatusRequest) (response.OnsiteRequestResponse, error)
	Delete(ctx context.Context, id string) error
	Logs(ctx context.Context, id, action string) ([]entities.OnsiteRequestLog, error)
	Timeline(ctx context.Context, id string) ([]entities.OnsiteRequestLog, error)
	Statistics(ctx context.Context) (entities.OnsiteRequestStatistics, error)
	ExportExcel(ctx context.Context, params map[string]string) (entities.Spreadsheet, error)
}
