package reporter

import (
	"sync/atomic"

	"github.com/rollbar/rollbar-go"
)

var enabled atomic.Bool

// Init turns Rollbar reporting on when a token is configured.
func Init(token, env, codeVersion string) {
	if token == "" {
		enabled.Store(false)
		return
	}
	rollbar.SetToken(token)
	rollbar.SetEnvironment(env)
	rollbar.SetCodeVersion(codeVersion)
	rollbar.SetEnabled(true)
	enabled.Store(true)
}

func Enabled() bool { return enabled.Load() }

// Error reports err with request metadata; no-op when Rollbar is off.
func Error(err error, extras map[string]interface{}) {
	if err == nil || !enabled.Load() {
		return
	}
	rollbar.Error(err, extras)
}

// Critical is used for recovered panics.
func Critical(v interface{}, extras map[string]interface{}) {
	if !enabled.Load() {
		return
	}
	rollbar.Critical(v, extras)
}

// Close flushes queued items; call on shutdown.
func Close() {
	if enabled.Load() {
		rollbar.Close()
	}
}
