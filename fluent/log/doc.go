// Package log defines the logging interface used by assertion failure reporting
// and the typed fields attached to each entry.
//
// Adapters (such as the zap package) implement Logger so callers can route
// assertion failures to the same backend as the rest of their application.
// GoLogger is a dependency-free fallback built on the standard log package.
package log
