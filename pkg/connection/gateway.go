/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package connection abstracts the previously negotiated secure channel used
// to exchange issuance protocol messages with one peer.
package connection

import (
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/common/service"
)

// AgentInfo identifies the local side of a connection.
type AgentInfo struct {
	LocalIdentifier string `json:"localIdentifier"`
	Label           string `json:"label,omitempty"`
}

// SendFn dispatches one protocol message to the peer.
type SendFn func(msg service.DIDCommMsgMap) error

// InboxMessage is one inbound protocol message together with its channel id.
type InboxMessage struct {
	ID  string
	Msg service.DIDCommMsgMap
}

// Connection is a secure-channel handle scoped to one peer. Timeouts and
// retries are the gateway's responsibility; callers treat any failure as
// terminal for the current operation.
type Connection interface {
	// ID returns the connection id.
	ID() string

	// AgentInfo returns the local identity on this channel.
	AgentInfo() AgentInfo

	// SendMessageClosure returns a callable that dispatches one message.
	SendMessageClosure() (SendFn, error)

	// GetMessages drains the connection inbox in arrival order.
	GetMessages() ([]InboxMessage, error)
}
