package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hovercode/client-go/internal/apierrors"
)

// errorMessageKeys are checked in order for a human-readable error detail.
var errorMessageKeys = []string{"detail", "error", "message"}

// readPayload reads and decodes a response body. A 204 yields an empty
// object without touching the body. Bodies that are not a single JSON value
// are returned as raw text.
func readPayload(resp *http.Response) (any, error) {
	if resp.StatusCode == http.StatusNoContent {
		return map[string]any{}, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return decodePayload(body), nil
}

// decodePayload returns the JSON value held by body, or body as text.
func decodePayload(body []byte) any {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return string(body)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return string(body)
	}
	return v
}

// errorMessage derives the message attached to an HTTP error.
func errorMessage(method, url string, statusCode int, payload any) string {
	prefix := fmt.Sprintf("%s %s failed (%d)", method, url, statusCode)

	switch p := payload.(type) {
	case map[string]any:
		for _, key := range errorMessageKeys {
			if value, ok := p[key].(string); ok && strings.TrimSpace(value) != "" {
				return prefix + ": " + value
			}
		}
	case string:
		if strings.TrimSpace(p) != "" {
			return prefix + ": " + p
		}
	}
	return prefix + "."
}

// mapHTTPError converts a non-2xx response into a typed error.
func mapHTTPError(method, url string, statusCode int, payload any) *apierrors.APIError {
	return &apierrors.APIError{
		Kind:       apierrors.KindForStatus(statusCode),
		Message:    errorMessage(method, url, statusCode, payload),
		StatusCode: statusCode,
		Payload:    payload,
	}
}
