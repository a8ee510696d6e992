package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sizzilia/storefront/internal/models"
)

func sampleOrder() *models.Order {
	return &models.Order{
		OrderNumber: "PED-1700000000000-042",
		CustomerInfo: models.CustomerInfo{
			Name:  "Ana García",
			Email: "ana@example.com",
			Phone: "612345678",
		},
		Items: []models.OrderItem{
			{ID: "a1", Name: "Camiseta", Price: 19.90, Quantity: 2, Image: "/img/camiseta.jpg"},
			{ID: "b2", Name: "Gorra", Price: 12.00, Quantity: 1},
		},
		Total:         51.80,
		PaymentMethod: "bizum",
		BizumPhone:    "698765432",
	}
}

func TestCustomerConfirmationBody(t *testing.T) {
	t.Parallel()

	o := sampleOrder()
	body, err := CustomerConfirmationBody(o)
	require.NoError(t, err)

	assert.Contains(t, body, "Pedido #PED-1700000000000-042")
	assert.Contains(t, body, "Ana García")
	assert.Contains(t, body, "ana@example.com")
	assert.Contains(t, body, "612345678")
	assert.Contains(t, body, "€19.90")
	assert.Contains(t, body, "€39.80") // 2 × 19.90
	assert.Contains(t, body, "€51.80")
	assert.Contains(t, body, "698765432")
	assert.Contains(t, body, "PED-1700000000000-042 - Ana García")
}

func TestCustomerConfirmationBodyOmitsEmptyPhone(t *testing.T) {
	t.Parallel()

	o := sampleOrder()
	o.CustomerInfo.Phone = ""

	body, err := CustomerConfirmationBody(o)
	require.NoError(t, err)
	assert.NotContains(t, body, "Teléfono")
}

func TestAdminAlertBody(t *testing.T) {
	t.Parallel()

	o := sampleOrder()
	body, err := AdminAlertBody(o)
	require.NoError(t, err)

	assert.Contains(t, body, "NUEVO PEDIDO RECIBIDO")
	assert.Contains(t, body, "Pedido #PED-1700000000000-042")
	assert.Contains(t, body, "Camiseta - Cantidad: 2")
	assert.Contains(t, body, "TOTAL: €51.80")
	assert.Contains(t, body, "698765432")

	o.CustomerInfo.Phone = ""
	body, err = AdminAlertBody(o)
	require.NoError(t, err)
	assert.Contains(t, body, "No proporcionado")
}

func TestContactBodyEscapesHTML(t *testing.T) {
	t.Parallel()

	body, err := ContactBody(ContactData{
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Pedido",
		Message: "<script>alert(1)</script>",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Ana")
	assert.Contains(t, body, "ana@example.com")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestSubjects(t *testing.T) {
	t.Parallel()

	o := sampleOrder()
	assert.Equal(t, "Confirmación de Pedido #PED-1700000000000-042 - Sizzilia Code", CustomerConfirmationSubject(o))
	assert.Equal(t, "NUEVO PEDIDO #PED-1700000000000-042 - €51.80", AdminAlertSubject(o))
}
