// Package notify carries user-facing notices from background work to
// whatever surface displays them.
package notify

import (
	"log"
	"sync"
)

// Level classifies a notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a single message shown to the user.
type Notice struct {
	Level   Level
	Header  string
	Message string
}

// Sink receives the complete set of notices to display. A nil or empty
// slice clears any previously shown notices.
type Sink interface {
	Notify(notices []Notice)
}

// Error builds an error notice from err. A nil err yields a notice with an
// empty message.
func Error(header string, err error) Notice {
	n := Notice{Level: LevelError, Header: header}
	if err != nil {
		n.Message = err.Error()
	}
	return n
}

// Board keeps the latest notice set for polling readers such as the TUI.
type Board struct {
	mu      sync.RWMutex
	notices []Notice
}

// Notify replaces the board contents.
func (b *Board) Notify(notices []Notice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(notices) == 0 {
		b.notices = nil
		return
	}
	b.notices = append([]Notice(nil), notices...)
}

// Notices returns a copy of the current notices.
func (b *Board) Notices() []Notice {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.notices) == 0 {
		return nil
	}
	return append([]Notice(nil), b.notices...)
}

// LogSink writes each notice to a logger. Clears are not logged.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) Notify(notices []Notice) {
	if s.Logger == nil {
		return
	}
	for _, n := range notices {
		if n.Message == "" {
			s.Logger.Printf("[%s] %s", n.Level, n.Header)
			continue
		}
		s.Logger.Printf("[%s] %s: %s", n.Level, n.Header, n.Message)
	}
}

// Fanout delivers every notice set to each sink in order.
type Fanout []Sink

func (f Fanout) Notify(notices []Notice) {
	for _, s := range f {
		if s != nil {
			s.Notify(notices)
		}
	}
}
