package google

import (
	"bytes"
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"mime"
	"net/http"
	"net/mail"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var mailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// InterventionMail is the content of an intervention confirmation.
type InterventionMail struct {
	ClientEmail      string `json:"client_email"`
	ClientNom        string `json:"client_nom"`
	TechnicienNom    string `json:"technicien_nom"`
	Date             string `json:"date_intervention"`
	TypeIntervention string `json:"type_intervention"`
}

// ReminderMail is the content of the reminder sent the day before.
type ReminderMail struct {
	ClientEmail   string `json:"client_email"`
	ClientNom     string `json:"client_nom"`
	TechnicienNom string `json:"technicien_nom"`
	Date          string `json:"date_intervention"`
	Heure         string `json:"heure_intervention"`
}

// OrderMail is the content of an order confirmation sent to the supplier.
type OrderMail struct {
	FournisseurEmail string  `json:"fournisseur_email"`
	FournisseurNom   string  `json:"fournisseur_nom"`
	NumeroCommande   string  `json:"numero_commande"`
	MontantTTC       float64 `json:"montant_total"`
	DateCommande     string  `json:"date_commande"`
}

func (m OrderMail) Details() string {
	return fmt.Sprintf("Date: %s - Fournisseur: %s", m.DateCommande, m.FournisseurNom)
}

func (m OrderMail) MontantTotal() string {
	return fmt.Sprintf("%.2f €", m.MontantTTC)
}

// Message is one email. Body is HTML unless PlainText is set.
type Message struct {
	To        string
	Cc        string
	Subject   string
	Body      string
	PlainText bool
}

func renderTemplate(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := mailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s -> %w", name, err)
	}

	return buf.String(), nil
}

func InterventionNotificationMessage(m InterventionMail) (Message, error) {
	body, err := renderTemplate("intervention_notification.html", m)
	if err != nil {
		return Message{}, err
	}

	return Message{
		To:      m.ClientEmail,
		Subject: "Confirmation d'intervention MAGSAV - " + m.Date,
		Body:    body,
	}, nil
}

func InterventionReminderMessage(m ReminderMail) (Message, error) {
	body, err := renderTemplate("intervention_reminder.html", m)
	if err != nil {
		return Message{}, err
	}

	return Message{
		To:      m.ClientEmail,
		Subject: "Rappel intervention MAGSAV - Demain " + m.Heure,
		Body:    body,
	}, nil
}

func OrderConfirmationMessage(m OrderMail) (Message, error) {
	body, err := renderTemplate("order_confirmation.html", m)
	if err != nil {
		return Message{}, err
	}

	return Message{
		To:      m.FournisseurEmail,
		Subject: "Commande MAGSAV #" + m.NumeroCommande,
		Body:    body,
	}, nil
}

type GmailClient struct {
	api       *apiClient
	baseURL   string
	from      mail.Address
	signature string
}

func newGmailClient(api *apiClient, baseURL, senderName, senderEmail, signature string) *GmailClient {
	return &GmailClient{
		api:       api,
		baseURL:   strings.TrimRight(baseURL, "/"),
		from:      mail.Address{Name: senderName, Address: senderEmail},
		signature: signature,
	}
}

func (c *GmailClient) Ping(ctx context.Context) error {
	return c.api.do(ctx, http.MethodGet, c.baseURL+"/users/me/profile", nil, nil)
}

func (c *GmailClient) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("gmail: empty recipient")
	}

	payload := map[string]string{
		"raw": base64.URLEncoding.EncodeToString(c.raw(msg)),
	}

	return c.api.do(ctx, http.MethodPost, c.baseURL+"/users/me/messages/send", payload, nil)
}

// raw renders msg as an RFC 5322 message with the configured signature.
func (c *GmailClient) raw(msg Message) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.Cc != "" {
		fmt.Fprintf(&b, "Cc: %s\r\n", msg.Cc)
	}
	fmt.Fprintf(&b, "From: %s\r\n", c.from.String())
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	if msg.PlainText {
		b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	} else {
		b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	if c.signature != "" {
		b.WriteString("\r\n\r\n")
		if msg.PlainText {
			b.WriteString(c.signature)
		} else {
			b.WriteString("<br><br>")
			b.WriteString(c.signature)
		}
	}

	return b.Bytes()
}
