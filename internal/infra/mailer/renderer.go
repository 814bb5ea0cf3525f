package mailer

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"table-reservation/internal/pkg/config"
	"table-reservation/internal/usecase/commands"
)

//go:embed templates/*
var templateFS embed.FS

type Renderer struct {
	html       *htmltemplate.Template
	text       *texttemplate.Template
	restaurant config.RestaurantConfig
}

type confirmationData struct {
	commands.ConfirmationEmail
	Restaurant string
	Phone      string
	Address    string
}

func NewRenderer(restaurant config.RestaurantConfig) (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/confirmation.html")
	if err != nil {
		return nil, fmt.Errorf("parse html email template: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "templates/confirmation.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text email template: %w", err)
	}
	return &Renderer{html: html, text: text, restaurant: restaurant}, nil
}

func (r *Renderer) RenderConfirmation(data commands.ConfirmationEmail) (commands.Message, error) {
	d := confirmationData{
		ConfirmationEmail: data,
		Restaurant:        r.restaurant.Name,
		Phone:             r.restaurant.ContactPhone,
		Address:           r.restaurant.Address,
	}

	var html, text bytes.Buffer
	if err := r.html.Execute(&html, d); err != nil {
		return commands.Message{}, fmt.Errorf("render html email: %w", err)
	}
	if err := r.text.Execute(&text, d); err != nil {
		return commands.Message{}, fmt.Errorf("render text email: %w", err)
	}

	return commands.Message{
		To:      data.To,
		Subject: fmt.Sprintf("Confirmation de réservation - %s", r.restaurant.Name),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
