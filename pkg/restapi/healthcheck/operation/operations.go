/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

import (
	"net/http"
	"time"

	"github.com/edgeagent/backchannel/pkg/internal/common/support"
	"github.com/edgeagent/backchannel/pkg/restapi"
	commhttp "github.com/edgeagent/backchannel/pkg/restapi/internal/common/http"
)

// API endpoints.
const (
	healthCheckEndpoint = "/healthcheck"
)

// Operation defines handlers for the health check.
type Operation struct{}

// New returns a healthcheck operation instance.
func New() *Operation {
	return &Operation{}
}

// GetRESTHandlers gets all controller API handlers available for this service.
func (o *Operation) GetRESTHandlers() []restapi.Handler {
	return []restapi.Handler{
		support.NewHTTPHandler(healthCheckEndpoint, http.MethodGet, o.healthCheck),
	}
}

type healthCheckResp struct {
	Status      string    `json:"status"`
	CurrentTime time.Time `json:"currentTime"`
}

func (o *Operation) healthCheck(rw http.ResponseWriter, _ *http.Request) {
	rw.WriteHeader(http.StatusOK)

	commhttp.WriteResponse(rw, &healthCheckResp{Status: "success", CurrentTime: time.Now()})
}
