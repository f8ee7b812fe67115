package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoProviderNotConfigured = errors.New("mercado pago provider not configured")

// MercadoPagoProvider issues payment intents for engagements that are
// awaiting payment. In mock mode (local dev, CI) it fabricates an approved
// response without calling out.

type MercadoPagoProvider struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IBillingProvider = (*MercadoPagoProvider)(nil)

func NewMercadoPagoProvider(accessToken string) (*MercadoPagoProvider, error) {
	if isBillingProviderMockEnabled() {
		log.Printf("[billing][provider] mock mode enabled")
		return &MercadoPagoProvider{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[billing][provider] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[billing][provider] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[billing][provider] Mercado Pago client initialized")

	return &MercadoPagoProvider{client: payment.NewClient(cfg)}, nil
}

func (p *MercadoPagoProvider) CreatePaymentIntent(ctx context.Context, e entities.Engagement) (string, json.RawMessage, error) {
	if p != nil && p.mockMode {
		return p.mockIntent(e)
	}
	if p == nil || p.client == nil {
		log.Printf("[billing][provider] provider not configured")
		return "", nil, ErrMercadoPagoProviderNotConfigured
	}

	log.Printf("[billing][provider] intent start engagement_id=%s amount_cents=%d", e.ID, e.TotalAmountCents)

	req := payment.Request{
		TransactionAmount: float64(e.TotalAmountCents) / 100,
		Description:       e.Title,
		ExternalReference: e.ID,
	}

	resp, err := p.client.Create(ctx, req)
	if err != nil {
		log.Printf("[billing][provider] sdk create failed engagement_id=%s err=%v", e.ID, err)
		return "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[billing][provider] response marshal failed err=%v", err)
		return "", nil, err
	}
	log.Printf("[billing][provider] intent created engagement_id=%s provider_ref=%d provider_status=%s", e.ID, resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), b, nil
}

func (p *MercadoPagoProvider) mockIntent(e entities.Engagement) (string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{
		"id":                 id,
		"status":             "pending",
		"status_detail":      "pending_waiting_payment",
		"transaction_amount": float64(e.TotalAmountCents) / 100,
		"description":        e.Title,
		"external_reference": e.ID,
		"date_created":       now,
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[billing][provider] mock response marshal failed err=%v", err)
		return "", nil, err
	}

	log.Printf("[billing][provider] mock intent created engagement_id=%s provider_ref=%s", e.ID, id)
	return id, b, nil
}

func isBillingProviderMockEnabled() bool {
	for _, key := range []string{"BILLING_PROVIDER_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
