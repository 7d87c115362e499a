// Copyright 2025 lanchonete
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mercadopago

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreatePreference(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout/preferences", r.URL.Path)
		assert.Equal(t, "Bearer token-teste", r.Header.Get("Authorization"))

		var req PreferenceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "SN-1", req.ExternalReference)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Preference{
			ID:               "pref-1",
			InitPoint:        "https://www.mercadopago.com.br/init",
			SandboxInitPoint: "https://sandbox.mercadopago.com.br/init",
		})
	}))
	defer srv.Close()

	c := NewClient("token-teste", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	pref, err := c.CreatePreference(context.Background(), PreferenceRequest{
		ExternalReference: "SN-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "pref-1", pref.ID)
	assert.NotEmpty(t, pref.SandboxInitPoint)
}

func TestClient_CreatePreference_ErroHTTP(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("token-invalido", WithBaseURL(srv.URL))
	_, err := c.CreatePreference(context.Background(), PreferenceRequest{})
	assert.ErrorContains(t, err, "401")
}

func TestClient_SearchPaymentsByExternalReference(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/search", r.URL.Path)
		assert.Equal(t, "SN-1", r.URL.Query().Get("external_reference"))
		_ = json.NewEncoder(w).Encode(searchResponse{
			Results: []PaymentResult{
				{ID: 42, Status: "approved", ExternalReference: "SN-1"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("token-teste", WithBaseURL(srv.URL))
	results, err := c.SearchPaymentsByExternalReference(context.Background(), "SN-1")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "approved", results[0].Status)
}
