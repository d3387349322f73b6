package domain

import (
	"fmt"
	"io"
	"sync"
)

// Notifier receives the human-readable status lines a payment method emits
// while processing. Lines are informational and never parsed.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(message string)

// Notify calls f(message)
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// WriterNotifier writes every line to an io.Writer, one per line
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier creates a notifier writing to w
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify writes the message followed by a newline
func (n *WriterNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, message)
}

// MultiNotifier fans a line out to several notifiers
type MultiNotifier []Notifier

// Notify forwards the message to every non-nil notifier in order
func (m MultiNotifier) Notify(message string) {
	for _, n := range m {
		if n != nil {
			n.Notify(message)
		}
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// NopNotifier discards every line
var NopNotifier Notifier = nopNotifier{}
