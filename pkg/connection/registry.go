/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package connection

import (
	"sync"

	"github.com/edgeagent/backchannel/pkg/harness"
)

// Registry tracks the established connections by id.
type Registry struct {
	lock        sync.RWMutex
	connections map[string]Connection
}

// NewRegistry returns an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{connections: make(map[string]Connection)}
}

// Register adds conn to the registry, replacing any connection with the
// same id.
func (r *Registry) Register(conn Connection) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.connections[conn.ID()] = conn
}

// Get returns the connection with the given id.
func (r *Registry) Get(id string) (Connection, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	conn, ok := r.connections[id]
	if !ok {
		return nil, harness.NewError(harness.NotFound, "connection with id %s not found", id)
	}

	return conn, nil
}
