/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"github.com/edgeagent/backchannel/pkg/restapi"
	"github.com/edgeagent/backchannel/pkg/restapi/issuance/operation"
)

// New returns new controller instance.
func New(config *operation.Config) (*Controller, error) {
	issuanceService, err := operation.New(config)
	if err != nil {
		return nil, err
	}

	return &Controller{handlers: issuanceService.GetRESTHandlers()}, nil
}

// Controller contains handlers for controller.
type Controller struct {
	handlers []restapi.Handler
}

// GetOperations returns all controller endpoints.
func (c *Controller) GetOperations() []restapi.Handler {
	return c.handlers
}
