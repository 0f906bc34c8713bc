// Package email renders and delivers the site's transactional mails.
package email

import (
	"context"
)

// Message is a plain-text mail.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Service delivers messages. Implementations must be safe for concurrent use.
type Service interface {
	Send(ctx context.Context, msg *Message) error
}
