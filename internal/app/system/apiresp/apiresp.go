// Package apiresp writes the JSON envelope every endpoint answers with:
//
//	{ "status": bool, "message": "...", "errors": ["..."], "data": ... }
//
// and maps the error taxonomy onto status codes:
//
//	validation failure   400, every message in "errors"
//	record not found     404, "message" only
//	empty collection     404, "message" and "data": []
//	nothing to delete    400, "message"
package apiresp

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/chamberhub/internal/app/system/inputval"
	"go.uber.org/zap"
)

// Envelope is the response body shape shared by all endpoints.
type Envelope struct {
	Status  bool     `json:"status"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Data    any      `json:"data,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// OK answers 200 with data.
func OK(w http.ResponseWriter, msg string, data any) {
	JSON(w, http.StatusOK, Envelope{Status: true, Message: msg, Data: data})
}

// Created answers 201 with data.
func Created(w http.ResponseWriter, msg string, data any) {
	JSON(w, http.StatusCreated, Envelope{Status: true, Message: msg, Data: data})
}

// Success answers code with data. Creation endpoints use it to keep their
// historical 200 or 201.
func Success(w http.ResponseWriter, code int, msg string, data any) {
	JSON(w, code, Envelope{Status: true, Message: msg, Data: data})
}

// Done answers 200 with a message and no data.
func Done(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, Envelope{Status: true, Message: msg})
}

// Invalid answers 400 with every validation message.
func Invalid(w http.ResponseWriter, errs []string) {
	JSON(w, http.StatusBadRequest, Envelope{Status: false, Errors: errs})
}

// Validation answers 400 with the messages collected in res.
func Validation(w http.ResponseWriter, res *inputval.Result) {
	Invalid(w, res.Messages())
}

// NotFound answers 404 with a message only.
func NotFound(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusNotFound, Envelope{Status: false, Message: msg})
}

// Empty answers 404 with an empty data array, distinguishing an empty
// collection from a missing record.
func Empty(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusNotFound, Envelope{Status: false, Message: msg, Data: []any{}})
}

// NoOp answers 400 when the record exists but there was nothing to remove.
func NoOp(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, Envelope{Status: false, Message: msg})
}

func Unauthorized(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusUnauthorized, Envelope{Status: false, Message: msg})
}

func TooManyRequests(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusTooManyRequests, Envelope{Status: false, Message: msg})
}

// ServerError logs err and answers 500 with a generic message.
func ServerError(w http.ResponseWriter, log *zap.Logger, msg string, err error) {
	log.Error(msg, zap.Error(err))
	JSON(w, http.StatusInternalServerError, Envelope{Status: false, Message: "Internal server error."})
}

// FilteredEnvelope is the list shape for endpoints that echo their query
// filter back. Filter is null when no filter was sent.
type FilteredEnvelope struct {
	Status  bool    `json:"status"`
	Filter  *string `json:"filter"`
	Message string  `json:"message,omitempty"`
	Data    any     `json:"data"`
}

// Filtered answers a filtered list. An empty list answers 404 with
// "data": [] like Empty.
func Filtered(w http.ResponseWriter, filter *string, msg, emptyMsg string, data any, n int) {
	if n == 0 {
		JSON(w, http.StatusNotFound, FilteredEnvelope{Status: false, Filter: filter, Message: emptyMsg, Data: []any{}})
		return
	}
	JSON(w, http.StatusOK, FilteredEnvelope{Status: true, Filter: filter, Message: msg, Data: data})
}

// Malformed answers 400 when the body could not be parsed at all.
func Malformed(w http.ResponseWriter) {
	Invalid(w, []string{"The request body could not be read."})
}
