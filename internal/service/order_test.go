package service

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sizzilia/storefront/internal/mail"
	"github.com/sizzilia/storefront/internal/models"
	"github.com/sizzilia/storefront/internal/transport"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (f *fakeSender) Send(m mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeSender) messages() []mail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]mail.Message, len(f.sent))
	copy(out, f.sent)
	return out
}

func newOrderService(sender *fakeSender) *OrderService {
	return &OrderService{
		Mail:      sender,
		FromAddr:  "tienda@sizzilia.com",
		AdminAddr: "pedidos@sizzilia.com",
	}
}

func validOrderRequest() transport.ProcessOrderRequest {
	return transport.ProcessOrderRequest{
		CustomerInfo: models.CustomerInfo{
			Name:  " Ana García ",
			Email: " Ana@Example.COM ",
			Phone: "612 345 678",
		},
		Items: []models.OrderItem{
			{ID: "a1", Name: "camiseta", Price: 19.90, Quantity: 2, Image: "/img/camiseta.jpg"},
			{ID: "b2", Name: "gorra", Price: 12.00, Quantity: 1},
		},
		Total:      51.80,
		BizumPhone: "698765432",
	}
}

func TestProcessOrderValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(r *transport.ProcessOrderRequest)
		wantMsg string
	}{
		{
			name:    "no items",
			mutate:  func(r *transport.ProcessOrderRequest) { r.Items = nil },
			wantMsg: "Datos del pedido incompletos",
		},
		{
			name:    "missing name",
			mutate:  func(r *transport.ProcessOrderRequest) { r.CustomerInfo.Name = "" },
			wantMsg: "Nombre y email son obligatorios",
		},
		{
			name:    "missing email",
			mutate:  func(r *transport.ProcessOrderRequest) { r.CustomerInfo.Email = "" },
			wantMsg: "Nombre y email son obligatorios",
		},
		{
			name:    "bad email shape",
			mutate:  func(r *transport.ProcessOrderRequest) { r.CustomerInfo.Email = "not-an-email" },
			wantMsg: "Email no válido",
		},
		{
			name:    "phone too short",
			mutate:  func(r *transport.ProcessOrderRequest) { r.CustomerInfo.Phone = "61234567" },
			wantMsg: "Teléfono no válido. Debe contener solo números (9 dígitos)",
		},
		{
			name:    "phone with letter",
			mutate:  func(r *transport.ProcessOrderRequest) { r.CustomerInfo.Phone = "61234567a" },
			wantMsg: "Teléfono no válido. Debe contener solo números (9 dígitos)",
		},
		{
			name:    "missing bizum phone",
			mutate:  func(r *transport.ProcessOrderRequest) { r.BizumPhone = "" },
			wantMsg: "Número de Bizum no válido",
		},
		{
			name:    "bizum phone too short",
			mutate:  func(r *transport.ProcessOrderRequest) { r.BizumPhone = "61234567" },
			wantMsg: "Número de Bizum no válido",
		},
		{
			name:    "zero total",
			mutate:  func(r *transport.ProcessOrderRequest) { r.Total = 0 },
			wantMsg: "Total del pedido no válido",
		},
		{
			name:    "negative total",
			mutate:  func(r *transport.ProcessOrderRequest) { r.Total = -5 },
			wantMsg: "Total del pedido no válido",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &fakeSender{}
			svc := newOrderService(sender)

			req := validOrderRequest()
			tt.mutate(&req)

			order, err := svc.ProcessOrder(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Nil(t, order)
			assert.Empty(t, sender.messages())
		})
	}
}

func TestProcessOrderMinimalEmailShapePasses(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	svc := newOrderService(sender)

	req := validOrderRequest()
	req.CustomerInfo.Email = "a@b.co"

	order, err := svc.ProcessOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", order.CustomerInfo.Email)
}

func TestProcessOrderNormalizesAndNotifies(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	svc := newOrderService(sender)

	order, err := svc.ProcessOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^PED-\d+-\d{3}$`), order.OrderNumber)
	assert.Equal(t, "Ana García", order.CustomerInfo.Name)
	assert.Equal(t, "ana@example.com", order.CustomerInfo.Email)
	assert.Equal(t, "612345678", order.CustomerInfo.Phone)
	assert.Equal(t, "bizum", order.PaymentMethod)

	msgs := sender.messages()
	require.Len(t, msgs, 2)

	recipients := map[string]bool{}
	for _, m := range msgs {
		recipients[m.To] = true
		assert.Equal(t, "tienda@sizzilia.com", m.From)
		assert.Contains(t, m.Subject, order.OrderNumber)
		assert.Contains(t, m.HTML, order.OrderNumber)
	}
	assert.True(t, recipients["ana@example.com"])
	assert.True(t, recipients["pedidos@sizzilia.com"])
}

func TestProcessOrderSwallowsEmailFailures(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{err: errors.New("relay unreachable")}
	svc := newOrderService(sender)

	order, err := svc.ProcessOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEmpty(t, order.OrderNumber)
}

func TestOrderNumbersDiffer(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		n := newOrderNumber()
		seen[n] = true
	}
	// random suffix collisions are possible but 20 identical values are not
	assert.Greater(t, len(seen), 1)
}
