/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package operation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	op := New()
	require.Len(t, op.GetRESTHandlers(), 1)

	rw := httptest.NewRecorder()
	op.healthCheck(rw, httptest.NewRequest(http.MethodGet, healthCheckEndpoint, nil))

	require.Equal(t, http.StatusOK, rw.Code)

	resp := &healthCheckResp{}
	require.NoError(t, json.NewDecoder(rw.Body).Decode(resp))
	require.Equal(t, "success", resp.Status)
	require.False(t, resp.CurrentTime.IsZero())
}
