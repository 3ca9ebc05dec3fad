/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

// RegisterConnectionRequest registers an established secure channel with the
// agent.
type RegisterConnectionRequest struct {
	ConnectionID string `json:"connection_id"`
	Endpoint     string `json:"endpoint"`
	MyDID        string `json:"my_did"`
	Label        string `json:"label,omitempty"`
}

// RegisterConnectionResponse reports the registered connection.
type RegisterConnectionResponse struct {
	ConnectionID string `json:"connection_id"`
	State        string `json:"state"`
}
