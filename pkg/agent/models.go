/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package agent

import (
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/protocol/issuecredential"

	"github.com/edgeagent/backchannel/pkg/issuance"
)

// CredentialOffer is the issuer-authored payload starting an issuance
// exchange. It is never mutated after the issuer role object is constructed
// from it.
type CredentialOffer struct {
	CredDefID         string                            `json:"cred_def_id"`
	CredentialPreview issuecredential.PreviewCredential `json:"credential_preview"`
	ConnectionID      string                            `json:"connection_id"`
}

// OfferResult reports the outcome of sending a credential offer.
type OfferResult struct {
	State    issuance.ExternalState
	ThreadID string
}
