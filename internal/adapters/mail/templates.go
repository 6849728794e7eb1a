package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
)

const (
	tplWelcome           = "welcome"
	tplAdminNewUser      = "admin_new_user"
	tplSetPassword       = "set_password"
	tplResetPassword     = "reset_password"
	tplOrderPlacedClient = "order_placed_client"
	tplOrderPlacedAdmin  = "order_placed_admin"
	tplOrderPending      = "order_pending"
	tplOrderSent         = "order_sent"
	tplOrderDelivered    = "order_delivered"
	tplOrderCancelled    = "order_cancelled"
)

type itemLine struct {
	SKU       string
	Name      string
	Quantity  int64
	Price     string
	LineTotal string
}

type templateData struct {
	Name              string
	BusinessName      string
	Email             string
	Phone             string
	PersonalID        string
	BusinessID        string
	Country           string
	Reference         string
	Payment           string
	Subtotal          string
	Discount          int
	Total             string
	TrackingNumber    string
	Shipper           string
	EstimatedDelivery string
	Items             []itemLine
	Link              string
}

type emailTemplate struct {
	subject   *texttemplate.Template
	body      *texttemplate.Template
	linkLabel string
}

// Bodies are plain text; paragraphs are separated by a blank line.
var sources = map[string]struct{ subject, body, link string }{
	tplWelcome: {
		subject: "¡Bienvenido a Portal SPT!",
		body: "Hola {{.Name}},\n\n" +
			"Recibimos la solicitud de registro de {{.BusinessName}}. Un administrador revisará tus datos y te avisaremos por correo cuando tu cuenta sea aprobada.",
	},
	tplAdminNewUser: {
		subject: "Nueva solicitud de registro",
		body: "{{.Name}} ({{.Email}}, {{.Phone}}) solicitó una cuenta para {{.BusinessName}}.\n\n" +
			"Identificación: {{.PersonalID}} / {{.BusinessID}} ({{.Country}}).",
		link: "Revisar solicitud",
	},
	tplSetPassword: {
		subject: "¡Tu cuenta ha sido aprobada! Configura tu contraseña",
		body: "Hola {{.Name}},\n\n" +
			"Tu cuenta de {{.BusinessName}} fue aprobada. Usa el siguiente enlace para configurar tu contraseña.",
		link: "Configurar contraseña",
	},
	tplResetPassword: {
		subject: "Restablece tu contraseña en Portal SPT",
		body: "Hola {{.Name}},\n\n" +
			"Recibimos una solicitud para restablecer tu contraseña. Si no fuiste tú, ignora este correo.",
		link: "Restablecer contraseña",
	},
	tplOrderPlacedClient: {
		subject: "¡Pedido #{{.Reference}} confirmado!",
		body: "Hola {{.Name}}, recibimos tu pedido {{.Reference}}.\n\n" +
			"{{range .Items}}{{.Quantity}} x {{.Name}} ({{.SKU}}) = {{.LineTotal}}\n{{end}}\n" +
			"Subtotal: {{.Subtotal}}{{if .Discount}}, descuento {{.Discount}}%{{end}}. Total: {{.Total}}.",
		link: "Mis pedidos",
	},
	tplOrderPlacedAdmin: {
		subject: "Nueva orden solicitada",
		body: "{{.BusinessName}} ({{.BusinessID}}) realizó el pedido {{.Reference}} por {{.Total}}.\n\n" +
			"Pago: {{.Payment}}. Contacto: {{.Email}}, {{.Phone}}.",
	},
	tplOrderPending: {
		subject: "Orden registrada #{{.Reference}}",
		body: "Hola {{.Name}}, tu pedido {{.Reference}} está registrado y pendiente de despacho.\n\n" +
			"{{range .Items}}{{.Quantity}} x {{.Name}} ({{.SKU}}) = {{.LineTotal}}\n{{end}}\n" +
			"Total: {{.Total}}.",
		link: "Ver pedido",
	},
	tplOrderSent: {
		subject: "Tu orden está en camino, {{.Name}}",
		body: "Tu pedido {{.Reference}} fue despachado." +
			"{{if .Shipper}} Transportista: {{.Shipper}}.{{end}}" +
			"{{if .TrackingNumber}} Número de seguimiento: {{.TrackingNumber}}.{{end}}" +
			"{{if .EstimatedDelivery}}\n\nEntrega estimada: {{.EstimatedDelivery}}.{{end}}",
		link: "Ver pedido",
	},
	tplOrderDelivered: {
		subject: "Tu orden ha sido entregada, {{.Name}}",
		body:    "Tu pedido {{.Reference}} fue entregado. Gracias por tu compra.",
		link:    "Ver pedido",
	},
	tplOrderCancelled: {
		subject: "Orden cancelada - {{.Name}}",
		body:    "Tu pedido {{.Reference}} fue cancelado. Si tienes dudas, responde a este correo.",
		link:    "Ver pedido",
	},
}

var layout = template.Must(template.New("layout").Parse(
	`<!DOCTYPE html><html><body style="font-family:Arial,sans-serif">` +
		`{{range .Paragraphs}}<p>{{.}}</p>{{end}}` +
		`{{if .Link}}<p><a href="{{.Link}}">{{.LinkLabel}}</a></p>{{end}}` +
		`<p style="color:#888;font-size:12px">Portal SPT</p></body></html>`))

var templates = mustParseTemplates()

func mustParseTemplates() map[string]*emailTemplate {
	out := make(map[string]*emailTemplate, len(sources))
	for name, src := range sources {
		out[name] = &emailTemplate{
			subject:   texttemplate.Must(texttemplate.New(name + "_subject").Parse(src.subject)),
			body:      texttemplate.Must(texttemplate.New(name).Parse(src.body)),
			linkLabel: src.link,
		}
	}
	return out
}

// render produces a message without recipients.
func render(name string, data templateData) (Message, error) {
	tpl, ok := templates[name]
	if !ok {
		return Message{}, fmt.Errorf("mail: unknown template %q", name)
	}
	var subject, body bytes.Buffer
	if err := tpl.subject.Execute(&subject, data); err != nil {
		return Message{}, err
	}
	if err := tpl.body.Execute(&body, data); err != nil {
		return Message{}, err
	}

	text := strings.TrimSpace(body.String())
	link := ""
	if tpl.linkLabel != "" {
		link = data.Link
	}

	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	var html bytes.Buffer
	err := layout.Execute(&html, struct {
		Paragraphs []string
		Link       string
		LinkLabel  string
	}{paragraphs, link, tpl.linkLabel})
	if err != nil {
		return Message{}, err
	}

	if link != "" {
		text += "\n\n" + tpl.linkLabel + ": " + link
	}
	return Message{Subject: subject.String(), HTML: html.String(), Text: text}, nil
}
