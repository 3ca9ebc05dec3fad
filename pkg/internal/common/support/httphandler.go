/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package support provides helpers for building REST handlers.
package support

import "net/http"

// HTTPHandler is an http handler bound to a path and method.
type HTTPHandler struct {
	path   string
	method string
	handle http.HandlerFunc
}

// NewHTTPHandler returns an instance of HTTPHandler that can be used to handle
// http requests.
func NewHTTPHandler(path, method string, handle http.HandlerFunc) *HTTPHandler {
	return &HTTPHandler{path: path, method: method, handle: handle}
}

// Path returns the handler path.
func (h *HTTPHandler) Path() string {
	return h.path
}

// Method returns the handler http method.
func (h *HTTPHandler) Method() string {
	return h.method
}

// Handle returns the handler function.
func (h *HTTPHandler) Handle() http.HandlerFunc {
	return h.handle
}
