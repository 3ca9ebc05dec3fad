/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/protocol/issuecredential"
	"github.com/stretchr/testify/require"

	"github.com/edgeagent/backchannel/pkg/harness"
	mockconn "github.com/edgeagent/backchannel/pkg/internal/mock/connection"
)

func TestNewIssuer(t *testing.T) {
	t.Run("creates issuer in initial state", func(t *testing.T) {
		issuer, err := NewIssuer(
			&IssuerConfig{CredDefID: "V4SGRU86Z58d6TV7PBUe6f:3:CL:127:tag"},
			testPreview(), "session-1")
		require.NoError(t, err)
		require.Equal(t, StateInitial, issuer.State())
		require.Equal(t, "session-1", issuer.SessionID)
	})

	t.Run("error on missing config", func(t *testing.T) {
		_, err := NewIssuer(nil, testPreview(), "session-1")
		require.Error(t, err)
		require.True(t, harness.IsType(err, harness.Configuration))
	})

	t.Run("error on missing credential definition", func(t *testing.T) {
		_, err := NewIssuer(&IssuerConfig{}, testPreview(), "session-1")
		require.Error(t, err)
		require.True(t, harness.IsType(err, harness.Configuration))
	})

	t.Run("error on empty preview", func(t *testing.T) {
		_, err := NewIssuer(&IssuerConfig{CredDefID: "cred-def"},
			issuecredential.PreviewCredential{}, "session-1")
		require.Error(t, err)
		require.True(t, harness.IsType(err, harness.Configuration))
	})
}

func TestIssuerSendOffer(t *testing.T) {
	t.Run("sends offer and transitions state", func(t *testing.T) {
		sessionID := uuid.New().String()

		issuer, err := NewIssuer(&IssuerConfig{CredDefID: "cred-def-1"}, testPreview(), sessionID)
		require.NoError(t, err)

		conn := &mockconn.MockConnection{ConnID: "conn-1"}

		require.NoError(t, issuer.SendOffer(conn))
		require.Equal(t, StateExtOfferSent, issuer.State())
		require.Len(t, conn.Sent, 1)

		msg := conn.Sent[0]
		require.Equal(t, issuecredential.OfferCredentialMsgTypeV2, msg.Type())
		require.Equal(t, sessionID, msg.ID())

		var offer issuecredential.OfferCredentialV2

		require.NoError(t, msg.Decode(&offer))
		require.Len(t, offer.Formats, 1)
		require.Equal(t, credAbstractFormat, offer.Formats[0].Format)
		require.Equal(t, testPreview().Attributes, offer.CredentialPreview.Attributes)

		credDefID, err := offerCredDefID(&offer)
		require.NoError(t, err)
		require.Equal(t, "cred-def-1", credDefID)
	})

	t.Run("error when offer already sent", func(t *testing.T) {
		issuer, err := NewIssuer(&IssuerConfig{CredDefID: "cred-def-1"}, testPreview(), "session-1")
		require.NoError(t, err)

		conn := &mockconn.MockConnection{ConnID: "conn-1"}

		require.NoError(t, issuer.SendOffer(conn))

		err = issuer.SendOffer(conn)
		require.Error(t, err)
		require.True(t, harness.IsType(err, harness.Protocol))
		require.Len(t, conn.Sent, 1)
	})

	t.Run("state unchanged when closure cannot be built", func(t *testing.T) {
		issuer, err := NewIssuer(&IssuerConfig{CredDefID: "cred-def-1"}, testPreview(), "session-1")
		require.NoError(t, err)

		conn := &mockconn.MockConnection{ConnID: "conn-1", ClosureErr: errors.New("channel closed")}

		err = issuer.SendOffer(conn)
		require.Error(t, err)
		require.True(t, harness.IsType(err, harness.Transport))
		require.Equal(t, StateInitial, issuer.State())
	})

	t.Run("state unchanged when send fails", func(t *testing.T) {
		issuer, err := NewIssuer(&IssuerConfig{CredDefID: "cred-def-1"}, testPreview(), "session-1")
		require.NoError(t, err)

		conn := &mockconn.MockConnection{ConnID: "conn-1", SendErr: errors.New("peer unreachable")}

		err = issuer.SendOffer(conn)
		require.Error(t, err)
		require.True(t, harness.IsType(err, harness.Transport))
		require.Equal(t, StateInitial, issuer.State())

		// the failed session can be retried
		conn.SendErr = nil
		require.NoError(t, issuer.SendOffer(conn))
		require.Equal(t, StateExtOfferSent, issuer.State())
	})
}

func testPreview() issuecredential.PreviewCredential {
	return issuecredential.PreviewCredential{
		Type: issuecredential.CredentialPreviewMsgTypeV2,
		Attributes: []issuecredential.Attribute{
			{Name: "first_name", Value: "Alice"},
			{Name: "last_name", Value: "Garcia"},
		},
	}
}
