package types

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// ContactResponse acknowledges a stored contact inquiry.
type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	InquiryID string `json:"inquiryId"`
}

// ProposalResponse returns the priced proposal to the client.
type ProposalResponse struct {
	Success          bool     `json:"success"`
	ProposalID       string   `json:"proposalId"`
	TotalPrice       int      `json:"totalPrice"`
	SelectedFeatures []string `json:"selectedFeatures"`
}
