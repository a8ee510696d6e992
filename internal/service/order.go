package service

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/sizzilia/storefront/internal/mail"
	"github.com/sizzilia/storefront/internal/models"
	"github.com/sizzilia/storefront/internal/transport"
	"github.com/sizzilia/storefront/pkg/logging"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Spanish mobile numbers: exactly 9 digits.
	phoneRe = regexp.MustCompile(`^[0-9]{9}$`)
	wsRe    = regexp.MustCompile(`\s`)
)

// OrderService validates an order payload, mints a reference number and
// fires the two notification emails. Orders are never stored.
type OrderService struct {
	Mail      mail.Sender
	FromAddr  string
	AdminAddr string
}

// ProcessOrder runs the validation chain (first failure wins), normalizes
// the customer fields and dispatches both emails before returning. Email
// failures are logged and swallowed: the order reference is still handed to
// the caller because nothing durable depends on delivery.
func (s *OrderService) ProcessOrder(ctx context.Context, req transport.ProcessOrderRequest) (*models.Order, error) {
	name := strings.TrimSpace(req.CustomerInfo.Name)
	email := strings.ToLower(strings.TrimSpace(req.CustomerInfo.Email))
	phone := wsRe.ReplaceAllString(req.CustomerInfo.Phone, "")

	if len(req.Items) == 0 {
		return nil, invalid("Datos del pedido incompletos")
	}
	if name == "" || email == "" {
		return nil, invalid("Nombre y email son obligatorios")
	}
	if !emailRe.MatchString(email) {
		return nil, invalid("Email no válido")
	}
	if phone != "" && !validPhone(phone) {
		return nil, invalid("Teléfono no válido. Debe contener solo números (9 dígitos)")
	}
	if req.BizumPhone == "" || !validPhone(req.BizumPhone) {
		return nil, invalid("Número de Bizum no válido")
	}
	if req.Total <= 0 {
		return nil, invalid("Total del pedido no válido")
	}

	order := &models.Order{
		OrderNumber: newOrderNumber(),
		CustomerInfo: models.CustomerInfo{
			Name:  name,
			Email: email,
			Phone: phone,
		},
		Items:         req.Items,
		Total:         req.Total,
		PaymentMethod: "bizum",
		BizumPhone:    req.BizumPhone,
	}

	s.sendNotifications(ctx, order)

	return order, nil
}

func (s *OrderService) sendNotifications(ctx context.Context, o *models.Order) {
	l := logging.FromContext(ctx)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := s.sendCustomerConfirmation(o); err != nil {
			l.Error("customer_email_failed", "order_number", o.OrderNumber, "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.sendAdminAlert(o); err != nil {
			l.Error("admin_email_failed", "order_number", o.OrderNumber, "error", err)
		}
	}()

	wg.Wait()
}

func (s *OrderService) sendCustomerConfirmation(o *models.Order) error {
	body, err := mail.CustomerConfirmationBody(o)
	if err != nil {
		return err
	}
	return s.Mail.Send(mail.Message{
		From:    s.FromAddr,
		To:      o.CustomerInfo.Email,
		Subject: mail.CustomerConfirmationSubject(o),
		HTML:    body,
	})
}

func (s *OrderService) sendAdminAlert(o *models.Order) error {
	body, err := mail.AdminAlertBody(o)
	if err != nil {
		return err
	}
	return s.Mail.Send(mail.Message{
		From:    s.FromAddr,
		To:      s.AdminAddr,
		Subject: mail.AdminAlertSubject(o),
		HTML:    body,
	})
}

func validPhone(phone string) bool {
	return phoneRe.MatchString(wsRe.ReplaceAllString(phone, ""))
}

func newOrderNumber() string {
	return fmt.Sprintf("PED-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}
