package web

import (
	"embed"
	"html/template"
)

const (
	reservationPage  = "reservation.html"
	confirmationPage = "confirmation.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates holds the parsed pages; install with gin.Engine.SetHTMLTemplate.
var Templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
