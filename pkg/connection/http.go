/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package connection

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/common/service"
	"github.com/trustbloc/edge-core/pkg/log"

	"github.com/edgeagent/backchannel/pkg/harness"
)

var logger = log.New("backchannel/connection")

// HTTPConnection sends protocol messages to the peer's inbound endpoint as
// JSON over HTTP and buffers inbound messages fed through Receive until the
// inbox is drained.
type HTTPConnection struct {
	id        string
	endpoint  string
	agentInfo AgentInfo
	client    *http.Client

	lock  sync.Mutex
	inbox []InboxMessage
}

// NewHTTPConnection returns a connection posting messages to endpoint.
func NewHTTPConnection(id, endpoint string, info AgentInfo, client *http.Client) *HTTPConnection {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPConnection{
		id:        id,
		endpoint:  endpoint,
		agentInfo: info,
		client:    client,
	}
}

// ID returns the connection id.
func (c *HTTPConnection) ID() string {
	return c.id
}

// AgentInfo returns the local identity on this channel.
func (c *HTTPConnection) AgentInfo() AgentInfo {
	return c.agentInfo
}

// SendMessageClosure returns a callable dispatching one message to the peer.
func (c *HTTPConnection) SendMessageClosure() (SendFn, error) {
	return func(msg service.DIDCommMsgMap) error {
		body, err := json.Marshal(msg)
		if err != nil {
			return harness.WrapError(harness.Transport, err, "marshal message for connection %s", c.id)
		}

		resp, err := c.client.Post(c.endpoint, "application/json", bytes.NewReader(body))
		if err != nil {
			return harness.WrapError(harness.Transport, err, "send message on connection %s", c.id)
		}

		defer func() {
			if errClose := resp.Body.Close(); errClose != nil {
				logger.Warnf("failed to close response body: %s", errClose)
			}
		}()

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return harness.NewError(harness.Transport,
				"send message on connection %s: peer returned %s", c.id, resp.Status)
		}

		return nil
	}, nil
}

// Receive appends an inbound message to the connection inbox.
func (c *HTTPConnection) Receive(msg service.DIDCommMsgMap) {
	c.lock.Lock()
	defer c.lock.Unlock()

	id := msg.ID()
	if id == "" {
		id = uuid.New().String()
	}

	c.inbox = append(c.inbox, InboxMessage{ID: id, Msg: msg})

	logger.Debugf("connection %s received message type=%s id=%s", c.id, msg.Type(), id)
}

// GetMessages drains the inbox in arrival order.
func (c *HTTPConnection) GetMessages() ([]InboxMessage, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	msgs := c.inbox
	c.inbox = nil

	return msgs, nil
}
