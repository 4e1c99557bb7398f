package audit

import (
	"go.uber.org/zap"
)

// InterfaceLogger is the sink every validation and processing outcome is
// appended to. Channels separate webhook traffic from other concerns.
type InterfaceLogger interface {
	Append(channel, message string)
}

type Logger struct {
	logger *zap.Logger
}

func NewAuditLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) Append(channel, message string) {
	l.logger.Info(message, zap.String("channel", channel))
}
