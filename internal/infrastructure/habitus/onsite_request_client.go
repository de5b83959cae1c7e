package habitus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
)

// OnsiteRequestClient wraps the /onsite-requests endpoints, the richest
// resource: CRUD plus status updates, audit logs, timeline and statistics.
type OnsiteRequestClient struct {
	client *Client
}

func NewOnsiteRequestClient(client *Client) *OnsiteRequestClient {
	return &OnsiteRequestClient{client: client}
}

func (o *OnsiteRequestClient) Create(ctx context.Context, data request.CreateOnsiteRequestRequest) (response.OnsiteRequestResponse, error) {
	payload, _, err := o.client.do(ctx, http.MethodPost, "/onsite-requests", nil, data)
	if err != nil {
		return response.OnsiteRequestResponse{}, err
	}
	return response.FromRawOnsiteRequest(payload)
}

// FindAll passes filters (status, quoteId, page, limit, ...) through as
// query parameters untouched and returns the normalized items plus the total
// reported by the backend.
func (o *OnsiteRequestClient) FindAll(ctx context.Context, filters map[string]string) ([]response.OnsiteRequestResponse, int, error) {
	payload, _, err := o.client.do(ctx, http.MethodGet, "/onsite-requests", toQuery(filters), nil)
	if err != nil {
		return nil, 0, err
	}

	items, total, err := response.DecodeList(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("habitus: decode onsite-request list: %w", err)
	}

	requests, err := response.FromRawOnsiteRequestList(items)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (o *OnsiteRequestClient) FindOne(ctx context.Context, id string) (response.OnsiteRequestResponse, error) {
	payload, _, err := o.client.do(ctx, http.MethodGet, "/onsite-requests/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return response.OnsiteRequestResponse{}, err
	}
	return response.FromRawOnsiteRequest(payload)
}

func (o *OnsiteRequestClient) Update(ctx context.Context, id string, data request.UpdateOnsiteRequestRequest) (response.OnsiteRequestResponse, error) {
	payload, _, err := o.client.do(ctx, http.MethodPatch, "/onsite-requests/"+url.PathEscape(id), nil, data.Payload())
	if err != nil {
		return response.OnsiteRequestResponse{}, err
	}
	return response.FromRawOnsiteRequest(payload)
}

func (o *OnsiteRequestClient) UpdateStatus(ctx context.Context, id string, data request.UpdateOnsiteRequestStatusRequest) (response.OnsiteRequestResponse, error) {
	payload, _, err := o.client.do(ctx, http.MethodPatch, "/onsite-requests/"+url.PathEscape(id)+"/status", nil, data)
	if err != nil {
		return response.OnsiteRequestResponse{}, err
	}
	return response.FromRawOnsiteRequest(payload)
}

func (o *OnsiteRequestClient) Delete(ctx context.Context, id string) error {
	_, _, err := o.client.do(ctx, http.MethodDelete, "/onsite-requests/"+url.PathEscape(id), nil, nil)
	return err
}

// Logs fetches audit entries, optionally filtered by action.
func (o *OnsiteRequestClient) Logs(ctx context.Context, id, action string) ([]entities.OnsiteRequestLog, error) {
	var query url.Values
	if action != "" {
		query = url.Values{"action": []string{action}}
	}
	payload, _, err := o.client.do(ctx, http.MethodGet, "/onsite-requests/"+url.PathEscape(id)+"/logs", query, nil)
	if err != nil {
		return nil, err
	}
	return decodeLogs(payload)
}

// Timeline fetches the log entries ordered by timestamp ascending.
func (o *OnsiteRequestClient) Timeline(ctx context.Context, id string) ([]entities.OnsiteRequestLog, error) {
	payload, _, err := o.client.do(ctx, http.MethodGet, "/onsite-requests/"+url.PathEscape(id)+"/timeline", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeLogs(payload)
}

func (o *OnsiteRequestClient) Statistics(ctx context.Context) (entities.OnsiteRequestStatistics, error) {
	payload, _, err := o.client.do(ctx, http.MethodGet, "/onsite-requests/statistics", nil, nil)
	if err != nil {
		return entities.OnsiteRequestStatistics{}, err
	}

	var stats entities.OnsiteRequestStatistics
	if err := json.Unmarshal(payload, &stats); err != nil {
		return entities.OnsiteRequestStatistics{}, fmt.Errorf("habitus: decode statistics: %w", err)
	}
	return stats, nil
}

func (o *OnsiteRequestClient) ExportExcel(ctx context.Context, params map[string]string) (entities.Spreadsheet, error) {
	payload, contentType, err := o.client.do(ctx, http.MethodGet, "/onsite-requests/export/excel", toQuery(params), nil)
	if err != nil {
		return entities.Spreadsheet{}, err
	}
	return entities.Spreadsheet{ContentType: contentType, Content: payload}, nil
}

func decodeLogs(payload []byte) ([]entities.OnsiteRequestLog, error) {
	items, _, err := response.DecodeList(payload)
	if err != nil {
		return nil, fmt.Errorf("habitus: decode log list: %w", err)
	}

	logs := make([]entities.OnsiteRequestLog, 0, len(items))
	for _, item := range items {
		var entry entities.OnsiteRequestLog
		if err := json.Unmarshal(item, &entry); err != nil {
			return nil, fmt.Errorf("habitus: decode log entry: %w", err)
		}
		logs = append(logs, entry)
	}
	return logs, nil
}
