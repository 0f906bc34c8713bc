package email

import (
	"context"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/logger"
)

type logService struct {
	logger *logger.Logger
}

// NewLogService writes messages to the log instead of sending them. Used
// when mail is disabled and in test mode.
func NewLogService(log *logger.Logger) Service {
	return &logService{logger: log}
}

func (s *logService) Send(ctx context.Context, msg *Message) error {
	s.logger.WithContext(ctx).Info("email not sent, mail transport disabled",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
