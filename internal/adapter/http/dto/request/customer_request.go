package request

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// UpdateCustomerRequest is a partial update; nil fields are omitted from the
// upstream PATCH body.
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// Payload builds the sparse body sent upstream, carrying only the fields the
// operator actually changed.
func (r UpdateCustomerRequest) Payload() map[string]any {
	payload := map[string]any{}
	if r.Name != nil {
		payload["name"] = *r.Name
	}
	if r.Phone != nil {
		payload["phone"] = *r.Phone
	}
	return payload
}
