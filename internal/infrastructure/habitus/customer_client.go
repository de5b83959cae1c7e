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

// CustomerClient wraps the /customers endpoints. Customer payloads never
// shipped with legacy field names, so no normalization step is involved.
type CustomerClient struct {
	client *Client
}

func NewCustomerClient(client *Client) *CustomerClient {
	return &CustomerClient{client: client}
}

func (c *CustomerClient) Create(ctx context.Context, data request.CreateCustomerRequest) (entities.Customer, error) {
	payload, _, err := c.client.do(ctx, http.MethodPost, "/customers", nil, data)
	if err != nil {
		return entities.Customer{}, err
	}
	return decodeCustomer(payload)
}

func (c *CustomerClient) FindAll(ctx context.Context) ([]entities.Customer, error) {
	payload, _, err := c.client.do(ctx, http.MethodGet, "/customers", nil, nil)
	if err != nil {
		return nil, err
	}

	items, _, err := response.DecodeList(payload)
	if err != nil {
		return nil, fmt.Errorf("habitus: decode customer list: %w", err)
	}

	customers := make([]entities.Customer, 0, len(items))
	for _, item := range items {
		customer, err := decodeCustomer(item)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func (c *CustomerClient) FindOne(ctx context.Context, id string) (entities.Customer, error) {
	payload, _, err := c.client.do(ctx, http.MethodGet, "/customers/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return entities.Customer{}, err
	}
	return decodeCustomer(payload)
}

func (c *CustomerClient) Update(ctx context.Context, id string, data request.UpdateCustomerRequest) (entities.Customer, error) {
	payload, _, err := c.client.do(ctx, http.MethodPatch, "/customers/"+url.PathEscape(id), nil, data.Payload())
	if err != nil {
		return entities.Customer{}, err
	}
	return decodeCustomer(payload)
}

func (c *CustomerClient) Delete(ctx context.Context, id string) error {
	_, _, err := c.client.do(ctx, http.MethodDelete, "/customers/"+url.PathEscape(id), nil, nil)
	return err
}

// ExportExcel relays the spreadsheet bytes without inspecting them.
func (c *CustomerClient) ExportExcel(ctx context.Context, params map[string]string) (entities.Spreadsheet, error) {
	payload, contentType, err := c.client.do(ctx, http.MethodGet, "/customers/export/excel", toQuery(params), nil)
	if err != nil {
		return entities.Spreadsheet{}, err
	}
	return entities.Spreadsheet{ContentType: contentType, Content: payload}, nil
}

func decodeCustomer(payload []byte) (entities.Customer, error) {
	var customer entities.Customer
	if err := json.Unmarshal(payload, &customer); err != nil {
		return entities.Customer{}, fmt.Errorf("habitus: decode customer: %w", err)
	}
	return customer, nil
}

// toQuery passes caller-supplied filters through untouched; values are not
// validated here.
func toQuery(params map[string]string) url.Values {
	if len(params) == 0 {
		return nil
	}
	query := url.Values{}
	for key, value := range params {
		query.Set(key, value)
	}
	return query
}
