/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/common/model"
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/common/service"
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/protocol/decorator"
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/protocol/issuecredential"
	"github.com/trustbloc/edge-core/pkg/log"

	"github.com/edgeagent/backchannel/pkg/connection"
	"github.com/edgeagent/backchannel/pkg/harness"
)

var logger = log.New("backchannel/issuance")

// requestAttachment is the anoncreds payload carried in a request message.
type requestAttachment struct {
	ProverDID string `json:"prover_did"`
	CredDefID string `json:"cred_def_id"`
	Nonce     string `json:"nonce"`
}

// Holder is the state-carrying entity for the receiving side of one exchange.
// It is materialized from a received credential offer and mutated in place.
type Holder struct {
	SessionID   string                            `json:"session_id"`
	ThreadID    string                            `json:"thread_id,omitempty"`
	Offer       issuecredential.OfferCredentialV2 `json:"offer"`
	EngineState EngineState                       `json:"state"`
}

// NewHolder constructs a holder bound to one received credential offer.
func NewHolder(offer issuecredential.OfferCredentialV2, threadID, sessionID string) *Holder {
	return &Holder{
		SessionID:   sessionID,
		ThreadID:    threadID,
		Offer:       offer,
		EngineState: StateRequestReceived,
	}
}

// SendRequest builds a credential request referencing the offer's definition
// and the holder's local identifier, dispatches it on conn and transitions to
// request-sent. An offer carrying an invalid credential-definition reference
// is reported to the peer as a problem report before failing the call.
func (h *Holder) SendRequest(localID string, conn connection.Connection) error {
	if h.EngineState != StateRequestReceived {
		return harness.NewError(harness.Protocol, "request already sent for session %s", h.SessionID)
	}

	send, err := conn.SendMessageClosure()
	if err != nil {
		return harness.WrapError(harness.Transport, err, "get send closure for connection %s", conn.ID())
	}

	credDefID, err := offerCredDefID(&h.Offer)
	if err != nil {
		h.reportProblem(send, "issuance-abandoned: invalid credential-definition reference")

		return harness.WrapError(harness.Protocol, err,
			"offer for session %s has no valid credential-definition reference", h.SessionID)
	}

	attachID := uuid.New().String()

	msg := service.NewDIDCommMsgMap(&issuecredential.RequestCredentialV2{
		Type: issuecredential.RequestCredentialMsgTypeV2,
		Formats: []issuecredential.Format{{
			AttachID: attachID,
			Format:   credRequestFormat,
		}},
		RequestsAttach: []decorator.Attachment{{
			ID:       attachID,
			MimeType: "application/json",
			Data: decorator.AttachmentData{JSON: &requestAttachment{
				ProverDID: localID,
				CredDefID: credDefID,
				Nonce:     uuid.New().String(),
			}},
		}},
	})

	msg["@id"] = uuid.New().String()
	msg["~thread"] = &decorator.Thread{ID: h.ThreadID}

	if err := send(msg); err != nil {
		return harness.WrapError(harness.Transport, err, "send credential request for session %s", h.SessionID)
	}

	h.EngineState = StateOfferSent

	return nil
}

// State maps the holder's engine state to the external vocabulary.
func (h *Holder) State() ExternalState {
	return holderState(h.EngineState)
}

// reportProblem best-effort delivers a problem report to the peer.
func (h *Holder) reportProblem(send connection.SendFn, code string) {
	report := service.NewDIDCommMsgMap(&model.ProblemReport{
		Type:        issuecredential.ProblemReportMsgTypeV2,
		ID:          uuid.New().String(),
		Description: model.Code{Code: code},
	})

	report["~thread"] = &decorator.Thread{ID: h.ThreadID}

	if err := send(report); err != nil {
		logger.Warnf("failed to send problem report for session %s: %s", h.SessionID, err)
	}
}

// offerCredDefID extracts the credential-definition reference from the offer's
// anoncreds attachment.
func offerCredDefID(offer *issuecredential.OfferCredentialV2) (string, error) {
	for i := range offer.OffersAttach {
		data, err := offer.OffersAttach[i].Data.Fetch()
		if err != nil {
			continue
		}

		var attach offerAttachment

		if err := json.Unmarshal(data, &attach); err != nil || attach.CredDefID == "" {
			continue
		}

		return attach.CredDefID, nil
	}

	return "", harness.NewError(harness.Protocol, "offer has no credential-definition attachment")
}
