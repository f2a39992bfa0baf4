package clients

import (
	"context"
	"fmt"
	"time"

	"storefront-checkout/internal/modules/notification"

	"github.com/wneessen/go-mail"
)

const (
	defaultSMTPTimeout = 30 * time.Second
	implicitTLSPort    = 465
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPMailer sends one message per call over an authenticated SMTP session.
type SMTPMailer struct {
	cfg     SMTPConfig
	loggerf func(format string, args ...interface{})
}

func NewSMTPMailer(cfg SMTPConfig, loggerf func(format string, args ...interface{})) *SMTPMailer {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSMTPTimeout
	}
	return &SMTPMailer{cfg: cfg, loggerf: loggerf}
}

func (m *SMTPMailer) Send(ctx context.Context, email notification.Email) (string, error) {
	msg, err := buildMessage(email)
	if err != nil {
		return "", err
	}

	client, err := mail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		return "", fmt.Errorf("smtp client: %w", err)
	}

	start := time.Now()
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		m.loggerf("level=error msg=smtp send failed host=%s to=%s latency=%s err=%v", m.cfg.Host, email.To, time.Since(start), err)
		return "", err
	}

	messageID := firstHeader(msg, mail.HeaderMessageID)
	m.loggerf("level=info msg=smtp message sent host=%s to=%s message_id=%s latency=%s", m.cfg.Host, email.To, messageID, time.Since(start))
	return messageID, nil
}

func (m *SMTPMailer) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(m.cfg.Timeout),
	}
	if m.cfg.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	return opts
}

func buildMessage(email notification.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(email.FromName, email.From); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", email.From, err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", email.To, err)
	}
	if len(email.Cc) > 0 {
		if err := msg.Cc(email.Cc...); err != nil {
			return nil, fmt.Errorf("invalid cc address: %w", err)
		}
	}
	msg.Subject(email.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	return msg, nil
}

func firstHeader(msg *mail.Msg, h mail.Header) string {
	if v := msg.GetGenHeader(h); len(v) > 0 {
		return v[0]
	}
	return ""
}
