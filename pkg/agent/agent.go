/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package agent orchestrates issuance sessions: it resolves session ids to
// role objects, advances them over the connection gateway and persists the
// outcome.
package agent

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/protocol/issuecredential"
	"github.com/trustbloc/edge-core/pkg/log"

	"github.com/edgeagent/backchannel/pkg/connection"
	"github.com/edgeagent/backchannel/pkg/harness"
	"github.com/edgeagent/backchannel/pkg/issuance"
	"github.com/edgeagent/backchannel/pkg/store/session"
)

var logger = log.New("backchannel/agent")

// Agent is one logical agent identity. All operations serialize on the agent
// lock: each is a synchronous sequence of at most one network round-trip and
// one store access, and a failed transition never overwrites persisted state.
type Agent struct {
	lock        sync.Mutex
	sessions    *session.Store
	registry    *connection.Registry
	defaultConn connection.Connection
}

// New returns an agent backed by the given session store and connection
// registry.
func New(sessions *session.Store, registry *connection.Registry) *Agent {
	return &Agent{
		sessions: sessions,
		registry: registry,
	}
}

// RegisterConnection adds conn to the registry and makes it the default peer
// for session-less holder calls.
func (a *Agent) RegisterConnection(conn connection.Connection) {
	a.lock.Lock()
	defer a.lock.Unlock()

	a.registry.Register(conn)
	a.defaultConn = conn
}

// DefaultConnection returns the last known connection, or nil.
func (a *Agent) DefaultConnection() connection.Connection {
	a.lock.Lock()
	defer a.lock.Unlock()

	return a.defaultConn
}

// SendCredentialOffer constructs an issuer for a fresh session id, sends the
// offer on the referenced connection and persists the issuer.
func (a *Agent) SendCredentialOffer(offer *CredentialOffer) (*OfferResult, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	conn, err := a.registry.Get(offer.ConnectionID)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()

	issuer, err := issuance.NewIssuer(&issuance.IssuerConfig{CredDefID: offer.CredDefID},
		offer.CredentialPreview, id)
	if err != nil {
		return nil, err
	}

	if err := issuer.SendOffer(conn); err != nil {
		return nil, err
	}

	if err := a.sessions.PutIssuer(id, issuer); err != nil {
		return nil, harness.WrapError(harness.Internal, err, "save issuer for session %s", id)
	}

	a.defaultConn = conn

	logger.Infof("credential offer sent, session=%s connection=%s", id, conn.ID())

	return &OfferResult{State: issuer.State(), ThreadID: id}, nil
}

// SendCredentialRequest advances the holder for the session id by sending a
// credential request on the default connection.
func (a *Agent) SendCredentialRequest(sessionID string) (issuance.ExternalState, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	holder, err := a.sessions.GetHolder(sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return "", harness.NewError(harness.NotFound, "holder with id %s not found", sessionID)
	}

	if err != nil {
		return "", harness.WrapError(harness.Internal, err, "load holder for session %s", sessionID)
	}

	if a.defaultConn == nil {
		return "", harness.NewError(harness.Internal, "no connection established")
	}

	if err := holder.SendRequest(a.defaultConn.AgentInfo().LocalIdentifier, a.defaultConn); err != nil {
		return "", err
	}

	if err := a.sessions.PutHolder(sessionID, holder); err != nil {
		return "", harness.WrapError(harness.Internal, err, "save holder for session %s", sessionID)
	}

	logger.Infof("credential request sent, session=%s", sessionID)

	return holder.State(), nil
}

// GetState resolves the external state for a session id: an existing issuer
// first, then an existing holder, and finally the inbox of the default
// connection, from which a holder is materialized for the most recently
// received credential offer.
func (a *Agent) GetState(sessionID string) (issuance.ExternalState, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	issuer, err := a.sessions.GetIssuer(sessionID)
	if err == nil {
		return issuer.State(), nil
	}

	if !errors.Is(err, session.ErrNotFound) {
		return "", harness.WrapError(harness.Internal, err, "load issuer for session %s", sessionID)
	}

	holder, err := a.sessions.GetHolder(sessionID)
	if err == nil {
		return holder.State(), nil
	}

	if !errors.Is(err, session.ErrNotFound) {
		return "", harness.WrapError(harness.Internal, err, "load holder for session %s", sessionID)
	}

	return a.materializeHolder(sessionID)
}

// materializeHolder scans the default connection's inbox for credential
// offers and constructs a holder from the most recent one.
func (a *Agent) materializeHolder(sessionID string) (issuance.ExternalState, error) {
	if a.defaultConn == nil {
		return "", harness.NewError(harness.Internal, "no connection established")
	}

	msgs, err := a.defaultConn.GetMessages()
	if err != nil {
		return "", harness.WrapError(harness.Transport, err, "drain inbox for connection %s", a.defaultConn.ID())
	}

	var (
		offer    issuecredential.OfferCredentialV2
		threadID string
		found    bool
	)

	for _, msg := range msgs {
		if msg.Msg.Type() != issuecredential.OfferCredentialMsgTypeV2 {
			continue
		}

		var candidate issuecredential.OfferCredentialV2

		if err := msg.Msg.Decode(&candidate); err != nil {
			logger.Warnf("skipping malformed credential offer %s: %s", msg.ID, err)

			continue
		}

		// last one wins: the inbox is in arrival order
		offer, threadID, found = candidate, msg.ID, true
	}

	if !found {
		return "", harness.NewError(harness.NotFound,
			"no credential offer found for connection %s", a.defaultConn.ID())
	}

	holder := issuance.NewHolder(offer, threadID, sessionID)

	if err := a.sessions.PutHolder(sessionID, holder); err != nil {
		return "", harness.WrapError(harness.Internal, err, "save holder for session %s", sessionID)
	}

	logger.Infof("holder materialized from inbox, session=%s thread=%s", sessionID, threadID)

	return holder.State(), nil
}
