package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/muhammadheryan/hoardspace/model"
	rzp "github.com/razorpay/razorpay-go"
)

// Gateway opens orders with the payment provider and checks the signature
// the checkout widget returns after payment.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*model.GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

type gateway struct {
	client    *rzp.Client
	keyID     string
	keySecret string
}

func NewGateway(cfg *config.Config) Gateway {
	return &gateway{
		client:    rzp.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret),
		keyID:     cfg.Razorpay.KeyID,
		keySecret: cfg.Razorpay.KeySecret,
	}
}

func (g *gateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*model.GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay create order: missing order id in response")
	}

	return &model.GatewayOrder{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

func (g *gateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(g.keySecret, orderID, paymentID, signature)
}

func (g *gateway) KeyID() string {
	return g.keyID
}

// Sign returns hex(HMAC-SHA256(secret, orderID|paymentID)).
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares with plain string equality, matching the provider's reference check.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	return Sign(secret, orderID, paymentID) == signature
}
