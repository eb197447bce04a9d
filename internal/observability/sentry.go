// Package observability forwards failures to Sentry when a DSN is set.
package observability

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

var sentryEnabled atomic.Bool

// InitSentry configures the Sentry client. An empty dsn disables reporting.
// The returned func flushes buffered events and must be called on exit.
func InitSentry(dsn, environment, release string) (func(), bool, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		sentryEnabled.Store(false)
		return func() {}, false, nil
	}

	options := sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      strings.TrimSpace(environment),
		Release:          release,
		AttachStacktrace: true,
	}

	if err := sentry.Init(options); err != nil {
		sentryEnabled.Store(false)
		return func() {}, false, err
	}

	sentryEnabled.Store(true)
	return func() {
		sentry.Flush(2 * time.Second)
	}, true, nil
}

// CaptureError reports err with tags. It is a no-op until InitSentry has
// succeeded.
func CaptureError(err error, tags map[string]string) {
	if err == nil || !sentryEnabled.Load() {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for key, value := range tags {
			scope.SetTag(key, value)
		}
		sentry.CaptureException(err)
	})
}

// Enabled reports whether Sentry reporting is active.
func Enabled() bool {
	return sentryEnabled.Load()
}
