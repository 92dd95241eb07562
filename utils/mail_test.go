package utils

import (
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biscenic/biscenic-api/config"
)

func testSMTPConfig() config.SMTPConfig {
	return config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "notifications@biscenic.com",
		Timeout:  5 * time.Second,
	}
}

func TestMailerSend(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	mailer := NewMailerWithSender(testSMTPConfig(), func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg
		return nil
	})

	require.NoError(t, mailer.Send("ada@example.com", "Your Order Confirmation #ORD-9F3A21BC", "<p>hello</p>"))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "notifications@biscenic.com", gotFrom)
	assert.Equal(t, []string{"ada@example.com"}, gotTo)

	message := string(gotMsg)
	assert.Contains(t, message, "From: notifications@biscenic.com\r\n")
	assert.Contains(t, message, "To: ada@example.com\r\n")
	assert.Contains(t, message, "Subject: Your Order Confirmation #ORD-9F3A21BC\r\n")
	assert.Contains(t, message, "Content-Type: text/html")
	assert.Contains(t, message, "\r\n\r\n<p>hello</p>")
}

func TestMailerSendFailure(t *testing.T) {
	mailer := NewMailerWithSender(testSMTPConfig(), func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		return errors.New("connection refused")
	})

	err := mailer.Send("ada@example.com", "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}
