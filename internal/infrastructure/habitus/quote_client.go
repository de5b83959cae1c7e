package habitus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
)

// QuoteClient wraps the /quotes endpoints and normalizes every payload,
// since quote responses still arrive in both the nested and the legacy flat
// shape depending on backend age.
type QuoteClient struct {
	client *Client
}

func NewQuoteClient(client *Client) *QuoteClient {
	return &QuoteClient{client: client}
}

func (q *QuoteClient) Create(ctx context.Context, data request.CreateQuoteRequest) (response.QuoteResponse, error) {
	payload, _, err := q.client.do(ctx, http.MethodPost, "/quotes", nil, data.Payload())
	if err != nil {
		return response.QuoteResponse{}, err
	}
	return response.FromRawQuote(payload)
}

func (q *QuoteClient) FindAll(ctx context.Context) ([]response.QuoteResponse, error) {
	payload, _, err := q.client.do(ctx, http.MethodGet, "/quotes", nil, nil)
	if err != nil {
		return nil, err
	}

	items, _, err := response.DecodeList(payload)
	if err != nil {
		return nil, fmt.Errorf("habitus: decode quote list: %w", err)
	}
	return response.FromRawQuoteList(items)
}

func (q *QuoteClient) FindOne(ctx context.Context, id string) (response.QuoteResponse, error) {
	payload, _, err := q.client.do(ctx, http.MethodGet, "/quotes/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return response.QuoteResponse{}, err
	}
	return response.FromRawQuote(payload)
}

func (q *QuoteClient) FindByQuoteNo(ctx context.Context, quoteNo string) (response.QuoteResponse, error) {
	payload, _, err := q.client.do(ctx, http.MethodGet, "/quotes/by-number/"+url.PathEscape(quoteNo), nil, nil)
	if err != nil {
		return response.QuoteResponse{}, err
	}
	return response.FromRawQuote(payload)
}

func (q *QuoteClient) Update(ctx context.Context, id string, data request.UpdateQuoteRequest) (response.QuoteResponse, error) {
	payload, _, err := q.client.do(ctx, http.MethodPatch, "/quotes/"+url.PathEscape(id), nil, data.Payload())
	if err != nil {
		return response.QuoteResponse{}, err
	}
	return response.FromRawQuote(payload)
}

func (q *QuoteClient) Delete(ctx context.Context, id string) error {
	_, _, err := q.client.do(ctx, http.MethodDelete, "/quotes/"+url.PathEscape(id), nil, nil)
	return err
}

func (q *QuoteClient) ExportExcel(ctx context.Context, params map[string]string) (entities.Spreadsheet, error) {
	payload, contentType, err := q.client.do(ctx, http.MethodGet, "/quotes/export/excel", toQuery(params), nil)
	if err != nil {
		return entities.Spreadsheet{}, err
	}
	return entities.Spreadsheet{ContentType: contentType, Content: payload}, nil
}
