/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package issuance implements the issuer and holder role state machines of the
// credential-issuance exchange.
package issuance

// EngineState is a protocol-engine lifecycle state. The engine uses one code
// set for both roles: on the holder side request-received marks a stored offer
// and offer-sent marks a sent request.
type EngineState int

// Protocol-engine states.
const (
	StateNone EngineState = iota
	StateInitialized
	StateOfferSent
	StateRequestReceived
	StateAccepted
)

// ExternalState is the simplified state vocabulary reported to callers.
type ExternalState string

// External states.
const (
	StateInitial            ExternalState = "initial"
	StateExtOfferSent       ExternalState = "offer-sent"
	StateExtRequestReceived ExternalState = "request-received"
	StateCredentialSent     ExternalState = "credential-sent"
	StateOfferReceived      ExternalState = "offer-received"
	StateRequestSent        ExternalState = "request-sent"
	StateCredentialReceived ExternalState = "credential-received"
	StateUnknown            ExternalState = "unknown"
)

// issuerState maps an engine state to the issuer's external vocabulary. The
// mapping is total: codes outside the issuer lifecycle report unknown.
func issuerState(s EngineState) ExternalState {
	switch s {
	case StateInitialized:
		return StateInitial
	case StateOfferSent:
		return StateExtOfferSent
	case StateRequestReceived:
		return StateExtRequestReceived
	case StateAccepted:
		return StateCredentialSent
	default:
		return StateUnknown
	}
}

// holderState maps an engine state to the holder's external vocabulary.
func holderState(s EngineState) ExternalState {
	switch s {
	case StateRequestReceived:
		return StateOfferReceived
	case StateOfferSent:
		return StateRequestSent
	case StateAccepted:
		return StateCredentialReceived
	default:
		return StateUnknown
	}
}
