package model

// RenameResponse is returned on a successful POST /rename request.
type RenameResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// ErrorResponse is returned for any failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}
