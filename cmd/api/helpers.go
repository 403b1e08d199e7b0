package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

func (app *Application) extractIDParam(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// readJSON decodes a request body that must hold exactly one JSON object.
// Numbers are decoded as float64 so the validator can reject fractional integers.
func (app *Application) readJSON(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	maxBytes := 1_048_576 // 1MB
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, int64(maxBytes)))
	if err != nil {
		return nil, handleJsonErr(err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.New("body must not be empty")
	}
	var dst map[string]any
	if err := json.Unmarshal(body, &dst); err != nil {
		return nil, handleJsonErr(err)
	}
	if dst == nil {
		return nil, errors.New("body must be a JSON object")
	}
	return dst, nil
}

func handleJsonErr(err error) error {
	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError
	var invalidUnmarshalError *json.InvalidUnmarshalError
	var maxBytesError *http.MaxBytesError
	switch {
	case errors.As(err, &syntaxError):
		return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)

	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("body contains badly-formed JSON")

	case errors.As(err, &unmarshalTypeError):
		return errors.New("body must be a JSON object")

	case errors.Is(err, io.EOF):
		return errors.New("body must not be empty")

	case errors.As(err, &maxBytesError):
		return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)

	case errors.As(err, &invalidUnmarshalError):
		panic(err)
	default:
		return err
	}
}
