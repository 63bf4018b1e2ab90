// Package flutterwave is a thin client for the Flutterwave v3 REST API:
// create a hosted payment session and verify a transaction by id.
package flutterwave

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront-api/internal/service"

	"go.uber.org/zap"
)

type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
	log       *zap.Logger
}

func NewClient(baseURL, secretKey string, log *zap.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		http:      &http.Client{Timeout: 30 * time.Second},
		log:       log,
	}
}

type paymentCustomization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createPaymentPayload struct {
	TxRef          string                  `json:"tx_ref"`
	Amount         float64                 `json:"amount"`
	Currency       string                  `json:"currency"`
	RedirectURL    string                  `json:"redirect_url"`
	PaymentOptions string                  `json:"payment_options"`
	Customer       service.GatewayCustomer `json:"customer"`
	Customizations paymentCustomization    `json:"customizations"`
}

type createPaymentResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Link string `json:"link"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID       int64   `json:"id"`
		TxRef    string  `json:"tx_ref"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Status   string  `json:"status"`
	} `json:"data"`
}

func (c *Client) CreatePayment(ctx context.Context, req service.CreatePaymentRequest) (service.CreatePaymentResult, error) {
	payload := createPaymentPayload{
		TxRef:          req.TxRef,
		Amount:         req.Amount,
		Currency:       req.Currency,
		RedirectURL:    req.RedirectURL,
		PaymentOptions: "card, ussd, banktransfer, googlepay, applepay, bank",
		Customer:       req.Customer,
		Customizations: paymentCustomization{
			Title:       "Storefront",
			Description: "Payment for storefront products",
		},
	}

	var resp createPaymentResponse
	if err := c.post(ctx, "/payments", payload, &resp); err != nil {
		return service.CreatePaymentResult{}, err
	}

	if resp.Status != "success" {
		return service.CreatePaymentResult{}, fmt.Errorf("flutterwave create payment: status %q: %s", resp.Status, resp.Message)
	}
	if resp.Data.Link == "" {
		return service.CreatePaymentResult{}, fmt.Errorf("flutterwave create payment: empty hosted link")
	}

	return service.CreatePaymentResult{Link: resp.Data.Link}, nil
}

func (c *Client) VerifyTransaction(ctx context.Context, transactionID int64) (service.GatewayTransaction, error) {
	var resp verifyResponse
	if err := c.get(ctx, fmt.Sprintf("/transactions/%d/verify", transactionID), &resp); err != nil {
		return service.GatewayTransaction{}, err
	}

	if resp.Status != "success" {
		return service.GatewayTransaction{}, fmt.Errorf("flutterwave verify: status %q: %s", resp.Status, resp.Message)
	}

	return service.GatewayTransaction{
		ID:       resp.Data.ID,
		TxRef:    resp.Data.TxRef,
		Amount:   resp.Data.Amount,
		Currency: resp.Data.Currency,
		Status:   resp.Data.Status,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("flutterwave request", zap.String("method", req.Method), zap.String("url", req.URL.Path))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("flutterwave %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("flutterwave %s %s: read body: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("flutterwave %s %s: http %d: %s", req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("flutterwave %s %s: decode response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
