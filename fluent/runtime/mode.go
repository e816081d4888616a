// Package runtime holds process-wide switches that change how assertion
// failures are reported.
package runtime

import (
	"os"
	"strings"
	"sync"
)

var (
	// productionMode controls whether stack traces are attached to assertion
	// failure logs and span events.
	productionMode   bool
	productionModeMu sync.RWMutex
)

// SetProductionMode enables or disables production mode.
// In production mode, stack traces are never captured for assertion failures.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode returns whether production mode was explicitly enabled.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}

// ShouldIncludeStack reports whether stack traces may be captured.
//
// SetProductionMode(true) always wins. Otherwise the ENV and GO_ENV variables
// are consulted, and "production" in either disables stacks.
func ShouldIncludeStack() bool {
	if IsProductionMode() {
		return false
	}

	env := strings.TrimSpace(os.Getenv("ENV"))
	goEnv := strings.TrimSpace(os.Getenv("GO_ENV"))

	return !strings.EqualFold(env, "production") && !strings.EqualFold(goEnv, "production")
}
