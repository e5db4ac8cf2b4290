package server

import (
	"github.com/aiclex/crux-invoice/internal/model"
)

// AssembleResponse is the response for the assemble endpoint
type AssembleResponse struct {
	Document *model.Document `json:"document"`
}

// WordsRequest asks for an amount spelled out in words
type WordsRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// WordsResponse is the response for the words endpoint
type WordsResponse struct {
	Amount string `json:"amount"`
	Words  string `json:"words"`
}

// ClientsResponse lists the known client names
type ClientsResponse struct {
	Clients []string `json:"clients"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}
