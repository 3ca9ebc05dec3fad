/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package connection

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyperledger/aries-framework-go/pkg/didcomm/common/service"
	"github.com/stretchr/testify/require"

	"github.com/edgeagent/backchannel/pkg/harness"
)

func TestHTTPConnectionSend(t *testing.T) {
	t.Run("posts message to peer endpoint", func(t *testing.T) {
		var received service.DIDCommMsgMap

		peer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, err := ioutil.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &received))

			w.WriteHeader(http.StatusAccepted)
		}))
		defer peer.Close()

		conn := NewHTTPConnection("conn-1", peer.URL, AgentInfo{LocalIdentifier: "did:peer:abc"}, nil)
		require.Equal(t, "conn-1", conn.ID())
		require.Equal(t, "did:peer:abc", conn.AgentInfo().LocalIdentifier)

		send, err := conn.SendMessageClosure()
		require.NoError(t, err)

		msg := service.DIDCommMsgMap{"@id": "msg-1", "@type": "https://didcomm.org/test/1.0/ping"}
		require.NoError(t, send(msg))
		require.Equal(t, "msg-1", received.ID())
	})

	t.Run("error on non-success status", func(t *testing.T) {
		peer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer peer.Close()

		conn := NewHTTPConnection("conn-1", peer.URL, AgentInfo{}, nil)

		send, err := conn.SendMessageClosure()
		require.NoError(t, err)

		err = send(service.DIDCommMsgMap{"@id": "msg-1"})
		require.Error(t, err)
		require.True(t, harness.IsType(err, harness.Transport))
	})

	t.Run("error when peer is unreachable", func(t *testing.T) {
		conn := NewHTTPConnection("conn-1", "http://localhost:0", AgentInfo{}, nil)

		send, err := conn.SendMessageClosure()
		require.NoError(t, err)

		err = send(service.DIDCommMsgMap{"@id": "msg-1"})
		require.Error(t, err)
		require.True(t, harness.IsType(err, harness.Transport))
	})
}

func TestHTTPConnectionInbox(t *testing.T) {
	t.Run("drains inbox in arrival order", func(t *testing.T) {
		conn := NewHTTPConnection("conn-1", "https://peer.example.com", AgentInfo{}, nil)

		conn.Receive(service.DIDCommMsgMap{"@id": "msg-1"})
		conn.Receive(service.DIDCommMsgMap{"@id": "msg-2"})

		msgs, err := conn.GetMessages()
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		require.Equal(t, "msg-1", msgs[0].ID)
		require.Equal(t, "msg-2", msgs[1].ID)

		// draining empties the inbox
		msgs, err = conn.GetMessages()
		require.NoError(t, err)
		require.Empty(t, msgs)
	})

	t.Run("assigns an id to anonymous messages", func(t *testing.T) {
		conn := NewHTTPConnection("conn-1", "https://peer.example.com", AgentInfo{}, nil)

		conn.Receive(service.DIDCommMsgMap{"@type": "https://didcomm.org/test/1.0/ping"})

		msgs, err := conn.GetMessages()
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		require.NotEmpty(t, msgs[0].ID)
	})
}
