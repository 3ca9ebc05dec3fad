/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"github.com/google/uuid"
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/common/service"
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/protocol/decorator"
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/protocol/issuecredential"

	"github.com/edgeagent/backchannel/pkg/connection"
	"github.com/edgeagent/backchannel/pkg/harness"
)

// Attachment formats for anoncreds offers and requests.
const (
	credAbstractFormat = "hlindy/cred-abstract@v2.0"
	credRequestFormat  = "hlindy/cred-req@v2.0"
)

// offerAttachment is the anoncreds payload carried in an offer message.
type offerAttachment struct {
	CredDefID string `json:"cred_def_id"`
	RevRegID  string `json:"rev_reg_id,omitempty"`
	Nonce     string `json:"nonce"`
}

// IssuerConfig binds an issuer to a credential definition.
type IssuerConfig struct {
	CredDefID string `json:"cred_def_id"`
	RevRegID  string `json:"rev_reg_id,omitempty"`
	TailsFile string `json:"tails_file,omitempty"`
}

// Issuer is the state-carrying entity for the issuing side of one exchange.
// It is created once per session and mutated in place by each transition.
type Issuer struct {
	SessionID   string                            `json:"session_id"`
	CredDefID   string                            `json:"cred_def_id"`
	RevRegID    string                            `json:"rev_reg_id,omitempty"`
	TailsFile   string                            `json:"tails_file,omitempty"`
	Preview     issuecredential.PreviewCredential `json:"credential_preview"`
	EngineState EngineState                       `json:"state"`
}

// NewIssuer constructs a fresh issuer bound to a credential definition.
func NewIssuer(config *IssuerConfig, preview issuecredential.PreviewCredential, sessionID string) (*Issuer, error) {
	if config == nil || config.CredDefID == "" {
		return nil, harness.NewError(harness.Configuration, "credential definition reference is required")
	}

	if len(preview.Attributes) == 0 {
		return nil, harness.NewError(harness.Configuration, "credential preview has no attributes")
	}

	return &Issuer{
		SessionID:   sessionID,
		CredDefID:   config.CredDefID,
		RevRegID:    config.RevRegID,
		TailsFile:   config.TailsFile,
		Preview:     preview,
		EngineState: StateInitialized,
	}, nil
}

// SendOffer serializes the credential offer, dispatches it on conn and
// transitions to offer-sent. State is unchanged when the send fails.
func (i *Issuer) SendOffer(conn connection.Connection) error {
	if i.EngineState != StateInitialized {
		return harness.NewError(harness.Protocol, "offer already sent for session %s", i.SessionID)
	}

	send, err := conn.SendMessageClosure()
	if err != nil {
		return harness.WrapError(harness.Transport, err, "get send closure for connection %s", conn.ID())
	}

	attachID := uuid.New().String()

	msg := service.NewDIDCommMsgMap(&issuecredential.OfferCredentialV2{
		Type:              issuecredential.OfferCredentialMsgTypeV2,
		CredentialPreview: i.Preview,
		Formats: []issuecredential.Format{{
			AttachID: attachID,
			Format:   credAbstractFormat,
		}},
		OffersAttach: []decorator.Attachment{{
			ID:       attachID,
			MimeType: "application/json",
			Data: decorator.AttachmentData{JSON: &offerAttachment{
				CredDefID: i.CredDefID,
				RevRegID:  i.RevRegID,
				Nonce:     uuid.New().String(),
			}},
		}},
	})

	// the session id doubles as the protocol thread id
	msg["@id"] = i.SessionID

	if err := send(msg); err != nil {
		return harness.WrapError(harness.Transport, err, "send credential offer for session %s", i.SessionID)
	}

	i.EngineState = StateOfferSent

	return nil
}

// State maps the issuer's engine state to the external vocabulary.
func (i *Issuer) State() ExternalState {
	return issuerState(i.EngineState)
}
