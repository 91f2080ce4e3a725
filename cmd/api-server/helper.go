package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/RutikKulkarni/Football-Manager/internals/market"
)

var (
	ErrCouldNotParseBody = errors.New("could not parse request body")
	ErrCouldNotReadBody  = errors.New("could not read request body")
)

type httpResp struct {
	Status  int         `json:"status"`
	IsError bool        `json:"is_error"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func getBody(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return ErrCouldNotReadBody
	}
	err = json.Unmarshal(body, v)
	if err != nil {
		return ErrCouldNotParseBody
	}
	return nil
}

func sendResponse(rw http.ResponseWriter, resp httpResp) {
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.WriteHeader(resp.Status)
	out, err := json.Marshal(resp)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		rw.Write([]byte(`{"status": 500, "is_error": true, "error": "could not marshal response"}`))
		return
	}
	rw.Write(out)
}

// statusForMarketError maps the engine's error kinds onto HTTP statuses.
func statusForMarketError(err error) int {
	switch {
	case errors.Is(err, market.ErrNotFound), errors.Is(err, market.ErrNotAvailable):
		return http.StatusNotFound
	case errors.Is(err, market.ErrInvalidArgument),
		errors.Is(err, market.ErrPolicyViolation),
		errors.Is(err, market.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, market.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, market.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
