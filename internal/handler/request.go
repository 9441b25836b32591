package handler

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// decodeBody unmarshals a JSON request body into v.
func decodeBody(body []byte, v any) error {
	if len(body) == 0 {
		return fmt.Errorf("%w: request body is empty", ErrBadRequest)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", ErrBadRequest, err)
	}
	return nil
}

// parseClicks reads the number of header clicks to replay. A sort key without clicks is one click.
func parseClicks(sortKey, raw string) (int, error) {
	if raw == "" {
		if sortKey == "" {
			return 0, nil
		}
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: clicks must be a non-negative integer, got %q", ErrBadRequest, raw)
	}
	return n, nil
}

func parseDelta(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: delta must be an integer, got %q", ErrBadRequest, raw)
	}
	return n, nil
}

func confirmed(raw string) error {
	if ok, _ := strconv.ParseBool(raw); !ok {
		return ErrConfirmationRequired
	}
	return nil
}

// ImportResult reports how many rows a CSV import added.
type ImportResult struct {
	Imported int `json:"imported"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
