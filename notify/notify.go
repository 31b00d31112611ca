// Package notify is the headless stand-in for the storefront's toast layer.
// Recoverable failures are surfaced here and never retried automatically.
package notify

import "log"

type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// Logger writes notifications through the standard logger.
type Logger struct{}

func (Logger) Info(msg string)  { log.Println("ℹ️ ", msg) }
func (Logger) Error(msg string) { log.Println("❌", msg) }

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	Infos  []string
	Errors []string
}

func (r *Recorder) Info(msg string)  { r.Infos = append(r.Infos, msg) }
func (r *Recorder) Error(msg string) { r.Errors = append(r.Errors, msg) }
