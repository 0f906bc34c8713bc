package email

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

// Template is a string-based enum naming mail templates.
type Template string

const (
	TemplateBooking     Template = "booking"
	TemplateInfoRequest Template = "info_request"
)

// Footer closes every automatic mail.
const Footer = "Messaggio inviato automaticamente come risposta al form del sito del Centro Sacro Cuore."

var subjects = map[Template]string{
	TemplateBooking:     "Prenotazione Sacro Cuore",
	TemplateInfoRequest: "Richiesta di informazioni",
}

//go:embed templates/*.txt
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.txt"))

// BookingData fills TemplateBooking. Service is the display name.
type BookingData struct {
	Name    string
	Surname string
	Date    string
	Service string
	Footer  string
}

// InfoRequestData fills TemplateInfoRequest.
type InfoRequestData struct {
	Text   string
	Footer string
}

// Render builds the message for tmpl addressed to to.
func Render(tmpl Template, to string, data interface{}) (*Message, error) {
	subject, ok := subjects[tmpl]
	if !ok {
		return nil, fmt.Errorf("unknown email template %q", tmpl)
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, string(tmpl)+".txt", data); err != nil {
		return nil, fmt.Errorf("failed to execute email template %s: %w", tmpl, err)
	}

	return &Message{
		To:      []string{to},
		Subject: subject,
		Body:    body.String(),
	}, nil
}
