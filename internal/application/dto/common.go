package dto

import "github.com/shopspring/decimal"

func init() {
	// Quantities and amounts go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// MessageResponse body carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}
