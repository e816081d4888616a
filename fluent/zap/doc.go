// Package zap adapts go.uber.org/zap to the fluent/log interface so assertion
// failures can be emitted as structured, trace-correlated log entries.
package zap
