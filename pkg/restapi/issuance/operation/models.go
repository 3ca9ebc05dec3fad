/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

import "github.com/edgeagent/backchannel/pkg/agent"

// SendOfferRequest is the send-offer command body.
type SendOfferRequest struct {
	ID   string                 `json:"id,omitempty"`
	Data *agent.CredentialOffer `json:"data"`
}

// SendRequestRequest is the send-request command body.
type SendRequestRequest struct {
	ID string `json:"id"`
}

// StateResponse reports the external state of an issuance session.
type StateResponse struct {
	State    string `json:"state"`
	ThreadID string `json:"thread_id,omitempty"`
}
