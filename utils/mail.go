package utils

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/biscenic/biscenic-api/config"
)

type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends HTML mail over SMTP. The transport configuration is injected
// at construction, nothing is read from the environment at send time.
type Mailer struct {
	cfg  config.SMTPConfig
	send sendFunc
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg, send: sendMailWithTimeout(cfg)}
}

// NewMailerWithSender swaps the transport, used in tests.
func NewMailerWithSender(cfg config.SMTPConfig, send sendFunc) *Mailer {
	return &Mailer{cfg: cfg, send: send}
}

func (m *Mailer) Send(to, subject, body string) error {
	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.cfg.From,
		to,
		subject,
		body,
	)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := m.send(addr, auth, m.cfg.From, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// sendMailWithTimeout mirrors smtp.SendMail but puts a deadline on the whole
// exchange. smtp.SendMail itself can hang forever on an unresponsive server.
func sendMailWithTimeout(cfg config.SMTPConfig) sendFunc {
	return func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		conn, err := net.DialTimeout("tcp", addr, cfg.Timeout)
		if err != nil {
			return err
		}
		if cfg.Timeout > 0 {
			conn.SetDeadline(time.Now().Add(cfg.Timeout))
		}

		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			conn.Close()
			return err
		}

		client, err := smtp.NewClient(conn, host)
		if err != nil {
			conn.Close()
			return err
		}
		defer client.Close()

		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
				return err
			}
		}
		if auth != nil {
			if ok, _ := client.Extension("AUTH"); ok {
				if err := client.Auth(auth); err != nil {
					return err
				}
			}
		}

		if err := client.Mail(from); err != nil {
			return err
		}
		for _, rcpt := range to {
			if err := client.Rcpt(rcpt); err != nil {
				return err
			}
		}

		w, err := client.Data()
		if err != nil {
			return err
		}
		if _, err := w.Write(msg); err != nil {
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}

		return client.Quit()
	}
}
