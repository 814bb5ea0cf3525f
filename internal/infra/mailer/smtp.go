package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"

	"table-reservation/internal/pkg/config"
	"table-reservation/internal/usecase/commands"
)

const mimeBoundary = "reservation-alt-boundary"

// STARTTLS modes. In auto mode a loopback relay is spoken to in plain text
// (local MTAs usually present self-signed certificates) and any other host is
// upgraded whenever it offers STARTTLS.
const (
	StartTLSAuto     = "auto"
	StartTLSOff      = "off"
	StartTLSRequired = "required"
)

type SMTPMailer struct {
	host     string
	port     int
	from     mail.Address
	user     string
	pass     string
	startTLS string
}

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.SMTPStartTLS))
	switch mode {
	case "":
		mode = StartTLSAuto
	case StartTLSAuto, StartTLSOff, StartTLSRequired:
	default:
		return nil, fmt.Errorf("unknown SMTP_STARTTLS %q", cfg.SMTPStartTLS)
	}
	return &SMTPMailer{
		host:     strings.TrimSpace(cfg.SMTPHost),
		port:     cfg.SMTPPort,
		from:     mail.Address{Name: cfg.FromName, Address: strings.TrimSpace(cfg.FromEmail)},
		user:     strings.TrimSpace(cfg.SMTPUser),
		pass:     strings.TrimSpace(cfg.SMTPPass),
		startTLS: mode,
	}, nil
}

func (s *SMTPMailer) Send(ctx context.Context, msg commands.Message) error {
	to := strings.TrimSpace(msg.To)
	if to == "" {
		return fmt.Errorf("empty recipient email")
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer c.Close()

	if err := s.upgrade(c); err != nil {
		return err
	}
	if s.user != "" {
		if err := c.Auth(smtp.PlainAuth("", s.user, s.pass, s.host)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := c.Mail(s.from.Address); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(buildMIME(s.from, to, msg)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}
	return c.Quit()
}

func (s *SMTPMailer) upgrade(c *smtp.Client) error {
	if s.startTLS == StartTLSOff || (s.startTLS == StartTLSAuto && isLoopback(s.host)) {
		return nil
	}
	ok, _ := c.Extension("STARTTLS")
	if !ok {
		if s.startTLS == StartTLSRequired {
			return fmt.Errorf("smtp starttls required but not offered by %s", s.host)
		}
		return nil
	}
	if err := c.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
		return fmt.Errorf("smtp starttls: %w", err)
	}
	return nil
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func buildMIME(from mail.Address, to string, msg commands.Message) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from.String())
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", mimeBoundary)

	// text part
	fmt.Fprintf(&buf, "--%s\r\n", mimeBoundary)
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", msg.Text)

	// html part
	fmt.Fprintf(&buf, "--%s\r\n", mimeBoundary)
	fmt.Fprintf(&buf, "Content-Type: text/html; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", msg.HTML)

	fmt.Fprintf(&buf, "--%s--\r\n", mimeBoundary)
	return buf.Bytes()
}
