package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps the size of request bodies decoded by BindJSON.
const MaxBodyBytes = 1 << 20 // 1MB

var (
	// ErrEmptyBody is returned when BindJSON receives a request without a body.
	ErrEmptyBody = errors.New("request body is empty")

	// ErrTrailingData is returned when the body holds more than one JSON value.
	ErrTrailingData = errors.New("unexpected data after JSON value")
)

// bindJSON decodes exactly one JSON value from the request body.
// Anything but whitespace after it is an error.
func bindJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("bind json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("bind json: %w", ErrTrailingData)
	}
	return nil
}
