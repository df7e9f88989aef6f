package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/orris-inc/toolbox/internal/application/billing/usecases"
)

const testSecret = "whsec_test"

func sign(t *testing.T, payload string) (string, []byte) {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testSecret,
		Timestamp: time.Now(),
	})
	return signed.Header, signed.Payload
}

func TestVerify_CheckoutCompleted(t *testing.T) {
	header, body := sign(t, `{
		"id": "evt_checkout",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_1",
			"object": "checkout.session",
			"customer": "cus_1",
			"subscription": "sub_1",
			"metadata": {"userId": "7"}
		}}
	}`)

	evt, err := NewStripeWebhookVerifier(testSecret).Verify(body, header)
	require.NoError(t, err)
	assert.Equal(t, "evt_checkout", evt.ID)
	assert.Equal(t, usecases.EventCheckoutCompleted, evt.Type)
	assert.Equal(t, uint(7), evt.UserID)
	assert.Equal(t, "cus_1", evt.CustomerID)
	assert.Equal(t, "sub_1", evt.SubscriptionID)
}

func TestVerify_InvoicePaidPeriodEnd(t *testing.T) {
	header, body := sign(t, `{
		"id": "evt_invoice",
		"object": "event",
		"type": "invoice.paid",
		"data": {"object": {
			"id": "in_1",
			"object": "invoice",
			"customer": "cus_1",
			"lines": {"object": "list", "data": [
				{"id": "il_1", "object": "line_item", "period": {"start": 1760400000, "end": 1763078400}}
			]}
		}}
	}`)

	evt, err := NewStripeWebhookVerifier(testSecret).Verify(body, header)
	require.NoError(t, err)
	assert.Equal(t, "cus_1", evt.CustomerID)
	require.NotNil(t, evt.PeriodEnd)
	assert.Equal(t, time.Unix(1763078400, 0).UTC(), *evt.PeriodEnd)
}

func TestVerify_SubscriptionDeleted(t *testing.T) {
	header, body := sign(t, `{
		"id": "evt_sub",
		"object": "event",
		"type": "customer.subscription.deleted",
		"data": {"object": {"id": "sub_1", "object": "subscription", "customer": "cus_9"}}
	}`)

	evt, err := NewStripeWebhookVerifier(testSecret).Verify(body, header)
	require.NoError(t, err)
	assert.Equal(t, usecases.EventSubscriptionDeleted, evt.Type)
	assert.Equal(t, "cus_9", evt.CustomerID)
}

func TestVerify_NonNumericUserIDIsDropped(t *testing.T) {
	header, body := sign(t, `{
		"id": "evt_checkout",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_1", "object": "checkout.session", "metadata": {"userId": "cuid_abc"}}}
	}`)

	evt, err := NewStripeWebhookVerifier(testSecret).Verify(body, header)
	require.NoError(t, err)
	assert.Zero(t, evt.UserID)
}

func TestVerify_RejectsBadSignature(t *testing.T) {
	header, body := sign(t, `{"id": "evt_1", "object": "event", "type": "invoice.paid", "data": {"object": {}}}`)

	_, err := NewStripeWebhookVerifier("whsec_other").Verify(body, header)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = NewStripeWebhookVerifier(testSecret).Verify(body, "")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = NewStripeWebhookVerifier(testSecret).Verify(append(body, ' '), header)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_NotConfigured(t *testing.T) {
	_, err := NewStripeWebhookVerifier("").Verify([]byte(`{}`), "t=1,v1=abc")
	assert.ErrorIs(t, err, ErrWebhookNotConfigured)
}
