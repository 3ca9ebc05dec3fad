/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package http provides common REST response helpers.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/trustbloc/edge-core/pkg/log"
)

var logger = log.New("backchannel/restapi")

// ErrorResponse is the body of an error response.
type ErrorResponse struct {
	Message string `json:"errMessage,omitempty"`
}

// WriteErrorResponse writes an error response with the given status code.
func WriteErrorResponse(rw http.ResponseWriter, status int, msg string) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)

	if err := json.NewEncoder(rw).Encode(ErrorResponse{Message: msg}); err != nil {
		logger.Errorf("unable to send error message: %s", err)
	}
}

// WriteResponse writes v as the JSON response body.
func WriteResponse(rw http.ResponseWriter, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(rw).Encode(v); err != nil {
		logger.Errorf("unable to send response: %s", err)
	}
}
