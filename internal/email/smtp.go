package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/config"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/circuitbreaker"
)

type smtpService struct {
	dialer  *gomail.Dialer
	from    string
	breaker *circuitbreaker.CircuitBreaker
}

// NewSMTPService sends through the configured SMTP relay. Repeated relay
// failures open a breaker and further sends fail fast until it recovers.
func NewSMTPService(cfg config.MailConfig) Service {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}

	return &smtpService{
		dialer: d,
		from:   cfg.From,
		breaker: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "smtp",
			MaxFailures: 5,
			Timeout:     time.Minute,
		}),
	}
}

func (s *smtpService) Send(ctx context.Context, msg *Message) error {
	// gomail has no context support; at least do not dial for a dead caller.
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := s.breaker.Execute(func() error { return s.dialer.DialAndSend(m) }); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
