package printforge

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// TokenStore is the persistent slot holding the bearer token. It performs no
// validation; whatever Save receives is what Load returns. Load returns
// ErrNoToken when the slot is empty.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Config holds client options
type Config interface {
	GetBaseURL() string
	GetTokenFile() string
	GetRedisAddress() string
	GetRedisPassword() string
	GetRedisDB() int
	GetStoreWatchInterval() time.Duration
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] PRINTFORGE "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] PRINTFORGE "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] PRINTFORGE "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
