package notifier

import (
	"context"

	"autogiro-backend/internal/usecase/notification"

	"go.uber.org/zap"
)

// LogSender stands in when Firebase credentials are absent: it records what
// would have been sent and reports ErrNotConfigured.
type LogSender struct{ log *zap.Logger }

var _ notification.Sender = (*LogSender)(nil)

func NewLogSender(log *zap.Logger) *LogSender { return &LogSender{log: log} }

func (s *LogSender) Send(ctx context.Context, tokens []string, m notification.Message) (*notification.Result, error) {
	s.log.Info("push disabled, dropping notification",
		zap.Int("tokens", len(tokens)),
		zap.String("title", m.Title))
	return nil, notification.ErrNotConfigured
}
