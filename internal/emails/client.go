package emails

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultAPIURL = "https://api.brevo.com/v3/smtp/email"

// ErrNotConfigured is returned when no mail API key is set.
var ErrNotConfigured = errors.New("MAIL_NOT_CONFIGURED")

// Sender sends transactional emails. Nil-safe callers treat a send failure
// as a signal to take the dev bypass path.
type Sender interface {
	SendVerification(ctx context.Context, toEmail, verifyURL string) error
}

// Client sends emails via an HTTP transactional-mail API.
type Client struct {
	APIKey   string
	MailFrom string
	APIURL   string

	http *resty.Client
}

type sendRequest struct {
	Sender      party   `json:"sender"`
	To          []party `json:"to"`
	Subject     string  `json:"subject"`
	TextContent string  `json:"textContent"`
	HTMLContent string  `json:"htmlContent"`
}

type party struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func (c *Client) from() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return "noreply@bricklyusa.com"
}

func (c *Client) client() *resty.Client {
	if c.http == nil {
		c.http = resty.New().SetTimeout(15 * time.Second)
	}
	return c.http
}

// SendVerification sends the account-verification email.
func (c *Client) SendVerification(ctx context.Context, toEmail, verifyURL string) error {
	if c.APIKey == "" {
		return ErrNotConfigured
	}
	url := c.APIURL
	if url == "" {
		url = defaultAPIURL
	}
	body := sendRequest{
		Sender:      party{Email: c.from(), Name: "Brickly"},
		To:          []party{{Email: toEmail}},
		Subject:     "Verify your Brickly account",
		TextContent: fmt.Sprintf("Verify your email by clicking: %s", verifyURL),
		HTMLContent: fmt.Sprintf(`<p>Verify your email by clicking:</p><p><a href="%s">%s</a></p>`, verifyURL, verifyURL),
	}
	resp, err := c.client().R().
		SetContext(ctx).
		SetHeader("api-key", c.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("mail API status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
