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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://api.mercadopago.com"

// PreferenceItem é um item da preferência de checkout.
type PreferenceItem struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Quantity    int64   `json:"quantity"`
	CurrencyID  string  `json:"currency_id"`
	UnitPrice   float64 `json:"unit_price"`
}

type BackURLs struct {
	Success string `json:"success,omitempty"`
	Failure string `json:"failure,omitempty"`
	Pending string `json:"pending,omitempty"`
}

type PreferenceRequest struct {
	Items             []PreferenceItem `json:"items"`
	ExternalReference string           `json:"external_reference"`
	BackURLs          *BackURLs        `json:"back_urls,omitempty"`
	AutoReturn        string           `json:"auto_return,omitempty"`
	NotificationURL   string           `json:"notification_url,omitempty"`
	BinaryMode        bool             `json:"binary_mode"`
	Expires           bool             `json:"expires"`
	ExpirationFrom    *time.Time       `json:"expiration_date_from,omitempty"`
	ExpirationTo      *time.Time       `json:"expiration_date_to,omitempty"`
}

type Preference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

// PaymentResult é um pagamento devolvido pela busca por referência externa.
// Os status relevantes são approved e authorized; o resto conta como não pago.
type PaymentResult struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
}

type searchResponse struct {
	Results []PaymentResult `json:"results"`
}

// Client fala com a API REST do Mercado Pago. Não existe SDK oficial em Go;
// os dois endpoints usados aqui são estáveis há anos.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

func NewClient(accessToken string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     defaultBaseURL,
		accessToken: accessToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreatePreference(ctx context.Context, req PreferenceRequest) (Preference, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Preference{}, errors.Wrap(err, "falha ao serializar preferência")
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return Preference{}, errors.Wrap(err, "falha ao montar requisição de preferência")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Preference{}, errors.Wrap(err, "falha ao chamar o Mercado Pago")
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Preference{}, errors.Errorf("Mercado Pago devolveu status %d ao criar preferência", resp.StatusCode)
	}
	var pref Preference
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return Preference{}, errors.Wrap(err, "falha ao decodificar preferência")
	}
	return pref, nil
}

func (c *Client) SearchPaymentsByExternalReference(ctx context.Context, ref string) ([]PaymentResult, error) {
	q := url.Values{}
	q.Set("external_reference", ref)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v1/payments/search?%s", c.baseURL, q.Encode()), nil)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao montar busca de pagamentos")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao chamar o Mercado Pago")
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("Mercado Pago devolveu status %d na busca de pagamentos", resp.StatusCode)
	}
	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, errors.Wrap(err, "falha ao decodificar busca de pagamentos")
	}
	return sr.Results, nil
}
