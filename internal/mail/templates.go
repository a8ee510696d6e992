package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/sizzilia/storefront/internal/models"
)

// The HTML below mirrors the storefront's transactional emails: a styled
// confirmation for the customer and a plainer action-required alert for the
// shop owner. Copy is Spanish, amounts are euros.

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("€%.2f", v) },
	"mul":   func(price float64, qty int) float64 { return price * float64(qty) },
}

var customerTmpl = template.Must(template.New("customer").Funcs(funcs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background-color: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
  .content { background-color: #f8f9fa; padding: 20px; }
  .order-details { background-color: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
  .table { width: 100%; border-collapse: collapse; margin: 20px 0; }
  .total-row { background-color: #f1f5f9; font-weight: bold; }
  .footer { text-align: center; padding: 20px; font-size: 14px; color: #666; }
  .status { background-color: #fef3c7; color: #92400e; padding: 12px; border-radius: 8px; margin: 20px 0; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>¡Gracias por tu pedido!</h1>
    <h2>Pedido #{{.OrderNumber}}</h2>
  </div>
  <div class="content">
    <div class="status">
      <strong>Estado:</strong> Pendiente de confirmación de pago<br>
      <small>Verificaremos tu pago por Bizum y te confirmaremos en breve.</small>
    </div>
    <div class="order-details">
      <h3>Información del Cliente</h3>
      <p><strong>Nombre:</strong> {{.CustomerInfo.Name}}</p>
      <p><strong>Email:</strong> {{.CustomerInfo.Email}}</p>
      {{if .CustomerInfo.Phone}}<p><strong>Teléfono:</strong> {{.CustomerInfo.Phone}}</p>{{end}}
    </div>
    <div class="order-details">
      <h3>Resumen del Pedido</h3>
      <table class="table">
        <thead>
          <tr style="background-color: #f1f5f9;">
            <th style="padding: 12px 8px; text-align: left;">Imagen</th>
            <th style="padding: 12px 8px; text-align: left;">Producto</th>
            <th style="padding: 12px 8px; text-align: center;">Cantidad</th>
            <th style="padding: 12px 8px; text-align: right;">Precio Unit.</th>
            <th style="padding: 12px 8px; text-align: right;">Subtotal</th>
          </tr>
        </thead>
        <tbody>
          {{range .Items}}
          <tr style="border-bottom: 1px solid #eee;">
            <td style="padding: 12px 8px;"><img src="{{.Image}}" alt="{{.Name}}" style="width: 50px; height: 50px; object-fit: cover; border-radius: 4px;"></td>
            <td style="padding: 12px 8px; font-weight: 500;">{{.Name}}</td>
            <td style="padding: 12px 8px; text-align: center;">{{.Quantity}}</td>
            <td style="padding: 12px 8px; text-align: right;">{{money .Price}}</td>
            <td style="padding: 12px 8px; text-align: right; font-weight: 600;">{{money (mul .Price .Quantity)}}</td>
          </tr>
          {{end}}
          <tr class="total-row">
            <td colspan="4" style="padding: 16px 8px; text-align: right;"><strong>TOTAL:</strong></td>
            <td style="padding: 16px 8px; text-align: right; font-size: 18px;"><strong>{{money .Total}}</strong></td>
          </tr>
        </tbody>
      </table>
    </div>
    <div class="order-details">
      <h3>Información de Pago</h3>
      <p><strong>Método:</strong> Bizum</p>
      <p><strong>Número Bizum:</strong> {{.BizumPhone}}</p>
      <p><strong>Concepto indicado:</strong> {{.OrderNumber}} - {{.CustomerInfo.Name}}</p>
    </div>
  </div>
  <div class="footer">
    <p>Te contactaremos pronto para confirmar tu pedido.</p>
    <p>Si tienes alguna duda, responde a este email.</p>
    <p><small>Sizzilia Code - Tu tienda de confianza</small></p>
  </div>
</div>
</body>
</html>`))

var adminTmpl = template.Must(template.New("admin").Funcs(funcs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background-color: #dc2626; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
  .alert { background-color: #fecaca; color: #991b1b; padding: 15px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #dc2626; }
  .section { background-color: white; padding: 20px; margin: 10px 0; border-radius: 8px; border: 1px solid #e5e7eb; }
  .customer-info { background-color: #f0f9ff; border-left: 4px solid #0284c7; }
  .order-info { background-color: #f0fdf4; border-left: 4px solid #16a34a; }
  .payment-info { background-color: #fefce8; border-left: 4px solid #ca8a04; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>NUEVO PEDIDO RECIBIDO</h1>
    <h2>Pedido #{{.OrderNumber}}</h2>
  </div>
  <div class="alert">
    <strong>ACCIÓN REQUERIDA:</strong> Verificar pago por Bizum y confirmar pedido
  </div>
  <div class="section customer-info">
    <h3>Información del Cliente</h3>
    <p><strong>Nombre:</strong> {{.CustomerInfo.Name}}</p>
    <p><strong>Email:</strong> {{.CustomerInfo.Email}}</p>
    {{if .CustomerInfo.Phone}}<p><strong>Teléfono:</strong> {{.CustomerInfo.Phone}}</p>{{else}}<p>Teléfono: No proporcionado</p>{{end}}
  </div>
  <div class="section order-info">
    <h3>Productos Pedidos</h3>
    <pre style="background-color: #f9fafb; padding: 15px; border-radius: 4px; font-family: monospace;">{{range .Items}}• {{.Name}} - Cantidad: {{.Quantity}} - {{money .Price}} c/u = {{money (mul .Price .Quantity)}}
{{end}}</pre>
    <p style="font-size: 18px; font-weight: bold; text-align: right; margin-top: 15px; color: #16a34a;">TOTAL: {{money .Total}}</p>
  </div>
  <div class="section payment-info">
    <h3>Información de Pago</h3>
    <p><strong>Método:</strong> Bizum</p>
    <p><strong>Número Bizum del cliente:</strong> {{.BizumPhone}}</p>
    <p><strong>Concepto que debería aparecer:</strong> <code>{{.OrderNumber}} - {{.CustomerInfo.Name}}</code></p>
  </div>
  <div class="section">
    <h3>Próximos Pasos</h3>
    <ol>
      <li>Verificar el pago en Bizum ({{money .Total}})</li>
      <li>Confirmar disponibilidad de productos</li>
      <li>Contactar al cliente para coordinar entrega</li>
      <li>Actualizar estado del pedido</li>
    </ol>
  </div>
</div>
</body>
</html>`))

var contactTmpl = template.Must(template.New("contact").Parse(`<h3>Nuevo mensaje de contacto</h3>
<p><strong>Nombre:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Asunto:</strong> {{.Subject}}</p>
<p><strong>Mensaje:</strong> {{.Message}}</p>`))

func CustomerConfirmationBody(o *models.Order) (string, error) {
	return render(customerTmpl, o)
}

func AdminAlertBody(o *models.Order) (string, error) {
	return render(adminTmpl, o)
}

type ContactData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func ContactBody(d ContactData) (string, error) {
	return render(contactTmpl, d)
}

func CustomerConfirmationSubject(o *models.Order) string {
	return fmt.Sprintf("Confirmación de Pedido #%s - Sizzilia Code", o.OrderNumber)
}

func AdminAlertSubject(o *models.Order) string {
	return fmt.Sprintf("NUEVO PEDIDO #%s - €%.2f", o.OrderNumber, o.Total)
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}
