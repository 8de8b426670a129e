// Package notify carries the user-facing toast messages the widgets
// emit. Every failure in the cart and wheel surfaces is reported this
// way; nothing propagates as an unhandled fault.
package notify

import (
	"log"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notification is one message destined for the user.
type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier receives user-facing messages.
type Notifier interface {
	Success(message string)
	Info(message string)
	Error(message string)
}

// Log writes notifications to the standard logger.
type Log struct{}

func (Log) Success(message string) { log.Printf("[success] %s", message) }
func (Log) Info(message string)    { log.Printf("[info] %s", message) }
func (Log) Error(message string)   { log.Printf("[error] %s", message) }

// Recorder buffers notifications so a caller can drain them into a
// response, the way the page rendered them as toasts.
type Recorder struct {
	mu      sync.Mutex
	pending []Notification
}

func (r *Recorder) Success(message string) { r.add(LevelSuccess, message) }
func (r *Recorder) Info(message string)    { r.add(LevelInfo, message) }
func (r *Recorder) Error(message string)   { r.add(LevelError, message) }

func (r *Recorder) add(level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, Notification{Level: level, Message: message})
}

// Drain returns the buffered notifications and clears the buffer.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.pending
	r.pending = nil
	return out
}
