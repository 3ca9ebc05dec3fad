/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package connections

import (
	"github.com/edgeagent/backchannel/pkg/restapi"
	"github.com/edgeagent/backchannel/pkg/restapi/connections/operation"
)

// New returns new controller instance.
func New(config *operation.Config) (*Controller, error) {
	connectionService, err := operation.New(config)
	if err != nil {
		return nil, err
	}

	return &Controller{handlers: connectionService.GetRESTHandlers()}, nil
}

// Controller contains handlers for controller.
type Controller struct {
	handlers []restapi.Handler
}

// GetOperations returns all controller endpoints.
func (c *Controller) GetOperations() []restapi.Handler {
	return c.handlers
}
