package presenter

import "time"

// StatusSink receives user-facing messages from the other presenters.
type StatusSink interface {
	Info(msg string)
	Error(msg string)
}

// StatusView sets the status line in the view.
type StatusView interface {
	SetStatus(text string, isError bool)
}

type statusMessage struct {
	text    string
	isError bool
}

// StatusPresenter queues status messages and reflects the most recent one on
// the next Tick, so bursts of listener callbacks cost one view update.
type StatusPresenter struct {
	view    StatusView
	latest  statusMessage
	pending []statusMessage
}

func NewStatusPresenter(view StatusView) *StatusPresenter {
	return &StatusPresenter{view: view}
}

// Info queues a normal message.
func (p *StatusPresenter) Info(msg string) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, statusMessage{text: msg})
}

// Error queues an error message.
func (p *StatusPresenter) Error(msg string) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, statusMessage{text: msg, isError: true})
}

// Tick flushes the queue, showing only the last message.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	if len(p.pending) == 0 {
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	if last != p.latest {
		p.latest = last
		p.view.SetStatus(last.text, last.isError)
	}
}
