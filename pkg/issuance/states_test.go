/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssuerState(t *testing.T) {
	tests := []struct {
		name     string
		engine   EngineState
		expected ExternalState
	}{
		{name: "initialized", engine: StateInitialized, expected: StateInitial},
		{name: "offer sent", engine: StateOfferSent, expected: StateExtOfferSent},
		{name: "request received", engine: StateRequestReceived, expected: StateExtRequestReceived},
		{name: "accepted", engine: StateAccepted, expected: StateCredentialSent},
		{name: "none", engine: StateNone, expected: StateUnknown},
		{name: "out of range", engine: EngineState(42), expected: StateUnknown},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, issuerState(tc.engine))
		})
	}
}

func TestHolderState(t *testing.T) {
	tests := []struct {
		name     string
		engine   EngineState
		expected ExternalState
	}{
		{name: "request received maps to offer received", engine: StateRequestReceived, expected: StateOfferReceived},
		{name: "offer sent maps to request sent", engine: StateOfferSent, expected: StateRequestSent},
		{name: "accepted", engine: StateAccepted, expected: StateCredentialReceived},
		{name: "initialized is outside the holder lifecycle", engine: StateInitialized, expected: StateUnknown},
		{name: "none", engine: StateNone, expected: StateUnknown},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, holderState(tc.engine))
		})
	}
}
