package service

import (
	"context"
	"fmt"

	"github.com/sizzilia/storefront/internal/mail"
	"github.com/sizzilia/storefront/internal/transport"
)

// ContactService forwards a contact form submission as one email to the shop
// owner, with the visitor's address as Reply-To.
type ContactService struct {
	Mail          mail.Sender
	FromAddr      string
	RecipientAddr string
}

func (s *ContactService) SendInquiry(ctx context.Context, req transport.ContactRequest) error {
	body, err := mail.ContactBody(mail.ContactData{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	if err := s.Mail.Send(mail.Message{
		From:    s.FromAddr,
		To:      s.RecipientAddr,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Contacto: %s", req.Subject),
		HTML:    body,
	}); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}
