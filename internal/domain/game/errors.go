package game

import (
	"errors"
	"fmt"
)

var ErrAPI = errors.New("game api error")

// APIError is the server's error envelope for a non-200 response.
type APIError struct {
	Status  int    `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("game api: status %d", e.Status)
	}
	return fmt.Sprintf("game api: %s (status %d)", e.Message, e.Status)
}

func (e *APIError) Unwrap() error {
	return ErrAPI
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}
