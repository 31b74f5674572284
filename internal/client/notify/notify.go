// Package notify delivers the short success and error banners the UI shows
// after a submission.
package notify

import (
	"fmt"
	"io"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notifier interface {
	Notify(level Level, title, message string)
}

// WriterNotifier prints one line per notification.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(level Level, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if message == "" {
		fmt.Fprintf(n.w, "[%s] %s\n", level, title)
		return
	}
	fmt.Fprintf(n.w, "[%s] %s: %s\n", level, title, message)
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(Level, string, string) {}
