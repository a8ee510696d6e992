package checkout

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/sizzilia/storefront/internal/cart"
	"github.com/sizzilia/storefront/internal/models"
	"github.com/sizzilia/storefront/internal/transport"
)

// State is the checkout panel position.
type State int

const (
	StateCart State = iota
	StateContactForm
	StatePaymentInstructions
)

func (s State) String() string {
	switch s {
	case StateCart:
		return "cart"
	case StateContactForm:
		return "contact_form"
	case StatePaymentInstructions:
		return "payment_instructions"
	default:
		return "unknown"
	}
}

var (
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrInvalidTransition = errors.New("invalid checkout transition")

	// ErrValidation marks a failed form rule; the error text is the
	// user-facing message of the first rule that failed.
	ErrValidation = errors.New("validation")
)

type formError struct{ msg string }

func (e *formError) Error() string        { return e.msg }
func (e *formError) Is(target error) bool { return target == ErrValidation }
func invalidForm(msg string) error        { return &formError{msg: msg} }

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// OrderPlacer submits a validated order payload; pkg/shopclient implements it.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req transport.ProcessOrderRequest) (*transport.ProcessOrderResponse, error)
}

// Form holds what the customer typed so far. Values survive Back() so the
// form re-opens populated.
type Form struct {
	Name       string
	Email      string
	Phone      string
	BizumPhone string
}

// Instructions is what the payment screen shows once an order went through.
type Instructions struct {
	BizumPhone string
	Concept    string
	Total      float64
}

// Workflow drives one customer's checkout: Cart → ContactForm →
// PaymentInstructions → back to Cart on confirm. The cart is owned by the
// session and is preserved across failed submissions.
type Workflow struct {
	SessionID string

	cart        *cart.Cart
	placer      OrderPlacer
	state       State
	form        Form
	orderNumber string
}

func NewWorkflow(c *cart.Cart, placer OrderPlacer) *Workflow {
	return &Workflow{
		SessionID: uuid.NewString(),
		cart:      c,
		placer:    placer,
		state:     StateCart,
	}
}

func (w *Workflow) State() State        { return w.state }
func (w *Workflow) Cart() *cart.Cart    { return w.cart }
func (w *Workflow) Form() Form          { return w.form }
func (w *Workflow) OrderNumber() string { return w.orderNumber }

func (w *Workflow) SetName(v string)  { w.form.Name = v }
func (w *Workflow) SetEmail(v string) { w.form.Email = v }

// Phone inputs accept digits only, capped at nine, like the storefront's
// tel fields.
func (w *Workflow) SetPhone(v string)      { w.form.Phone = digits(v) }
func (w *Workflow) SetBizumPhone(v string) { w.form.BizumPhone = digits(v) }

// BeginCheckout opens the contact form. An empty cart stays on the cart view.
func (w *Workflow) BeginCheckout() error {
	if w.state != StateCart {
		return ErrInvalidTransition
	}
	if w.cart.IsEmpty() {
		return ErrEmptyCart
	}
	w.state = StateContactForm
	return nil
}

// Submit validates the form and posts the order. The first failing rule is
// returned as the user-facing message and the workflow stays on the form;
// the cart is preserved whether validation or the network fails.
func (w *Workflow) Submit(ctx context.Context) error {
	if w.state != StateContactForm {
		return ErrInvalidTransition
	}

	if err := w.validate(); err != nil {
		return err
	}

	req := transport.ProcessOrderRequest{
		CustomerInfo: models.CustomerInfo{
			Name:  strings.TrimSpace(w.form.Name),
			Email: strings.TrimSpace(w.form.Email),
			Phone: w.form.Phone,
		},
		Items:      snapshot(w.cart),
		Total:      w.cart.Total(),
		BizumPhone: w.form.BizumPhone,
	}

	resp, err := w.placer.PlaceOrder(ctx, req)
	if err != nil {
		return err
	}

	w.orderNumber = resp.OrderNumber
	w.state = StatePaymentInstructions
	return nil
}

func (w *Workflow) validate() error {
	if strings.TrimSpace(w.form.Name) == "" || strings.TrimSpace(w.form.Email) == "" {
		return invalidForm("Por favor completa todos los campos obligatorios")
	}
	if !emailRe.MatchString(strings.TrimSpace(w.form.Email)) {
		return invalidForm("Email no válido")
	}
	if len(w.form.BizumPhone) != 9 {
		return invalidForm("El número de Bizum debe tener exactamente 9 dígitos")
	}
	if w.form.Phone != "" && len(w.form.Phone) != 9 {
		return invalidForm("El teléfono debe tener exactamente 9 dígitos o déjalo vacío")
	}
	return nil
}

// Back steps one screen towards the cart, keeping the form values.
func (w *Workflow) Back() {
	switch w.state {
	case StatePaymentInstructions:
		w.state = StateContactForm
	case StateContactForm:
		w.state = StateCart
	}
}

// Confirm acknowledges the payment instructions: the cart and form are
// reset and the panel returns to the (now empty) cart view.
func (w *Workflow) Confirm() error {
	if w.state != StatePaymentInstructions {
		return ErrInvalidTransition
	}
	w.cart.Clear()
	w.form = Form{}
	w.orderNumber = ""
	w.state = StateCart
	return nil
}

// PaymentInstructions is only meaningful after a successful Submit.
func (w *Workflow) PaymentInstructions() (Instructions, bool) {
	if w.state != StatePaymentInstructions {
		return Instructions{}, false
	}
	return Instructions{
		BizumPhone: w.form.BizumPhone,
		Concept:    w.orderNumber + " - " + strings.TrimSpace(w.form.Name),
		Total:      w.cart.Total(),
	}, true
}

func snapshot(c *cart.Cart) []models.OrderItem {
	items := c.Items()
	out := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Image:    it.Image,
		})
	}
	return out
}

func digits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == 9 {
			break
		}
	}
	return b.String()
}
