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
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/common/service"
	"github.com/trustbloc/edge-core/pkg/log"

	"github.com/edgeagent/backchannel/pkg/agent"
	"github.com/edgeagent/backchannel/pkg/connection"
	"github.com/edgeagent/backchannel/pkg/internal/common/support"
	"github.com/edgeagent/backchannel/pkg/restapi"
	commhttp "github.com/edgeagent/backchannel/pkg/restapi/internal/common/http"
)

const (
	// API endpoints
	registerEndpoint = "/command/connection/register"
	receiveEndpoint  = "/didcomm/{connection_id}/messages"

	// http params
	connIDPathParam = "connection_id"

	connectedState = "completed"
)

var logger = log.New("backchannel/connection-ops")

// Config defines configuration for connection operations.
type Config struct {
	Agent      *agent.Agent
	Registry   *connection.Registry
	HTTPClient *http.Client
}

// Operation registers secure-channel handles and feeds their inboxes.
type Operation struct {
	agent      *agent.Agent
	registry   *connection.Registry
	httpClient *http.Client
}

// New returns a connections operation instance.
func New(config *Config) (*Operation, error) {
	if config.Agent == nil || config.Registry == nil {
		return nil, fmt.Errorf("agent and registry are required")
	}

	return &Operation{
		agent:      config.Agent,
		registry:   config.Registry,
		httpClient: config.HTTPClient,
	}, nil
}

// GetRESTHandlers gets all controller API handlers available for this service.
func (o *Operation) GetRESTHandlers() []restapi.Handler {
	return []restapi.Handler{
		support.NewHTTPHandler(registerEndpoint, http.MethodPost, o.registerConnection),
		support.NewHTTPHandler(receiveEndpoint, http.MethodPost, o.receiveMessage),
	}
}

// registerConnection wraps an established secure channel as an HTTP gateway
// connection and makes it the agent's default peer.
func (o *Operation) registerConnection(rw http.ResponseWriter, req *http.Request) {
	request := &RegisterConnectionRequest{}

	if err := json.NewDecoder(req.Body).Decode(request); err != nil {
		commhttp.WriteErrorResponse(rw, http.StatusBadRequest, fmt.Sprintf("invalid request: %s", err.Error()))

		return
	}

	if request.ConnectionID == "" || request.Endpoint == "" {
		commhttp.WriteErrorResponse(rw, http.StatusBadRequest, "connection_id and endpoint are required")

		return
	}

	conn := connection.NewHTTPConnection(request.ConnectionID, request.Endpoint, connection.AgentInfo{
		LocalIdentifier: request.MyDID,
		Label:           request.Label,
	}, o.httpClient)

	o.agent.RegisterConnection(conn)

	logger.Infof("connection %s registered, endpoint=%s", request.ConnectionID, request.Endpoint)

	commhttp.WriteResponse(rw, &RegisterConnectionResponse{
		ConnectionID: request.ConnectionID,
		State:        connectedState,
	})
}

// receiveMessage is the inbound hook feeding a connection's inbox.
func (o *Operation) receiveMessage(rw http.ResponseWriter, req *http.Request) {
	connID := mux.Vars(req)[connIDPathParam]

	conn, err := o.registry.Get(connID)
	if err != nil {
		commhttp.WriteErrorResponse(rw, http.StatusNotFound, err.Error())

		return
	}

	receiver, ok := conn.(interface{ Receive(service.DIDCommMsgMap) })
	if !ok {
		commhttp.WriteErrorResponse(rw, http.StatusInternalServerError,
			fmt.Sprintf("connection %s does not accept inbound messages", connID))

		return
	}

	var msg service.DIDCommMsgMap

	if err := json.NewDecoder(req.Body).Decode(&msg); err != nil {
		commhttp.WriteErrorResponse(rw, http.StatusBadRequest, fmt.Sprintf("invalid message: %s", err.Error()))

		return
	}

	receiver.Receive(msg)

	rw.WriteHeader(http.StatusAccepted)
}
