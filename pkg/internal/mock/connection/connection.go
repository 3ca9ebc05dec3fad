/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package connection

import (
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/common/service"

	"github.com/edgeagent/backchannel/pkg/connection"
)

// MockConnection mock secure-channel handle.
type MockConnection struct {
	ConnID     string
	Info       connection.AgentInfo
	ClosureErr error
	SendErr    error
	InboxErr   error
	Inbox      []connection.InboxMessage
	Sent       []service.DIDCommMsgMap
}

// ID returns the connection id.
func (c *MockConnection) ID() string {
	return c.ConnID
}

// AgentInfo returns the local identity on this channel.
func (c *MockConnection) AgentInfo() connection.AgentInfo {
	return c.Info
}

// SendMessageClosure returns a closure recording dispatched messages.
func (c *MockConnection) SendMessageClosure() (connection.SendFn, error) {
	if c.ClosureErr != nil {
		return nil, c.ClosureErr
	}

	return func(msg service.DIDCommMsgMap) error {
		if c.SendErr != nil {
			return c.SendErr
		}

		c.Sent = append(c.Sent, msg)

		return nil
	}, nil
}

// GetMessages drains the staged inbox.
func (c *MockConnection) GetMessages() ([]connection.InboxMessage, error) {
	if c.InboxErr != nil {
		return nil, c.InboxErr
	}

	msgs := c.Inbox
	c.Inbox = nil

	return msgs, nil
}
