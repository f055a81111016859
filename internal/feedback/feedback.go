package feedback

import (
	"fmt"
	"io"
	"sync"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notice is a short user-visible message, the snackbar of the web client
type Notice struct {
	Severity Severity
	Message  string
}

type Notifier interface {
	Notify(n Notice)
}

func Success(msg string) Notice {
	return Notice{Severity: SeveritySuccess, Message: msg}
}

func Failure(msg string) Notice {
	return Notice{Severity: SeverityError, Message: msg}
}

// WriterNotifier prints notices line by line
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (wn *WriterNotifier) Notify(n Notice) {
	wn.mu.Lock()
	defer wn.mu.Unlock()
	mark := "✔"
	if n.Severity == SeverityError {
		mark = "✘"
	}
	fmt.Fprintf(wn.w, "%s %s\n", mark, n.Message)
}

// Recorder keeps notices in memory
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Last returns the latest notice, ok is false if nothing was recorded
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

// Discard drops every notice
type Discard struct{}

func (Discard) Notify(Notice) {}
