/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/trustbloc/edge-core/pkg/log"

	"github.com/edgeagent/backchannel/pkg/agent"
	"github.com/edgeagent/backchannel/pkg/harness"
	"github.com/edgeagent/backchannel/pkg/internal/common/support"
	"github.com/edgeagent/backchannel/pkg/restapi"
	commhttp "github.com/edgeagent/backchannel/pkg/restapi/internal/common/http"
)

const (
	// API endpoints
	commandBasePath = "/command/issue-credential"

	sendOfferEndpoint   = commandBasePath + "/send-offer"
	sendRequestEndpoint = commandBasePath + "/send-request"
	getStateEndpoint    = commandBasePath + "/{issuer_id}"

	// http params
	issuerIDPathParam = "issuer_id"
)

var logger = log.New("backchannel/issuance-ops")

// Config defines configuration for issuance operations.
type Config struct {
	Agent *agent.Agent
}

// Operation defines handlers for the issue-credential commands.
type Operation struct {
	agent *agent.Agent
}

// New returns an issuance operation instance.
func New(config *Config) (*Operation, error) {
	if config.Agent == nil {
		return nil, fmt.Errorf("agent is required")
	}

	return &Operation{agent: config.Agent}, nil
}

// GetRESTHandlers gets all controller API handlers available for this service.
func (o *Operation) GetRESTHandlers() []restapi.Handler {
	return []restapi.Handler{
		support.NewHTTPHandler(sendOfferEndpoint, http.MethodPost, o.sendCredentialOffer),
		support.NewHTTPHandler(sendRequestEndpoint, http.MethodPost, o.sendCredentialRequest),
		support.NewHTTPHandler(getStateEndpoint, http.MethodGet, o.getState),
	}
}

func (o *Operation) sendCredentialOffer(rw http.ResponseWriter, req *http.Request) {
	request := &SendOfferRequest{}

	if err := json.NewDecoder(req.Body).Decode(request); err != nil {
		commhttp.WriteErrorResponse(rw, http.StatusBadRequest, fmt.Sprintf("invalid request: %s", err.Error()))

		return
	}

	if request.Data == nil {
		commhttp.WriteErrorResponse(rw, http.StatusBadRequest, "missing credential offer data")

		return
	}

	result, err := o.agent.SendCredentialOffer(request.Data)
	if err != nil {
		writeAgentError(rw, err)

		return
	}

	commhttp.WriteResponse(rw, &StateResponse{State: string(result.State), ThreadID: result.ThreadID})
}

func (o *Operation) sendCredentialRequest(rw http.ResponseWriter, req *http.Request) {
	request := &SendRequestRequest{}

	if err := json.NewDecoder(req.Body).Decode(request); err != nil {
		commhttp.WriteErrorResponse(rw, http.StatusBadRequest, fmt.Sprintf("invalid request: %s", err.Error()))

		return
	}

	state, err := o.agent.SendCredentialRequest(request.ID)
	if err != nil {
		writeAgentError(rw, err)

		return
	}

	commhttp.WriteResponse(rw, &StateResponse{State: string(state)})
}

func (o *Operation) getState(rw http.ResponseWriter, req *http.Request) {
	sessionID := mux.Vars(req)[issuerIDPathParam]

	state, err := o.agent.GetState(sessionID)
	if err != nil {
		writeAgentError(rw, err)

		return
	}

	rw.Header().Set("Cache-Control", "private, no-store, must-revalidate")

	commhttp.WriteResponse(rw, &StateResponse{State: string(state)})
}

// writeAgentError maps the typed agent error onto an http status, preserving
// the error kind end-to-end.
func writeAgentError(rw http.ResponseWriter, err error) {
	logger.Errorf("operation failed: %s", err)

	commhttp.WriteErrorResponse(rw, statusForError(err), err.Error())
}

func statusForError(err error) int {
	switch harness.TypeOf(err) {
	case harness.NotFound:
		return http.StatusNotFound
	case harness.Configuration, harness.Protocol:
		return http.StatusBadRequest
	case harness.Transport:
		return http.StatusBadGateway
	case harness.Internal:
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
