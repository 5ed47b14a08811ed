package tui

import "sync"

type transcriptLine struct {
	sender string
	text   string
}

// renderer implements controller.Renderer for the Bubble Tea front end.
// The controller mutates it from request goroutines; the model pulls a
// snapshot whenever the updates channel fires, so the Bubble Tea loop
// never touches shared state directly.
type renderer struct {
	mu         sync.Mutex
	lines      []transcriptLine
	options    []string
	busy       bool
	clearInput bool

	updates chan struct{}
}

func newRenderer() *renderer {
	// Buffered by one so notifications coalesce instead of blocking the
	// request goroutine.
	return &renderer{updates: make(chan struct{}, 1)}
}

func (r *renderer) notify() {
	select {
	case r.updates <- struct{}{}:
	default:
	}
}

func (r *renderer) AppendMessage(sender, text string) {
	r.mu.Lock()
	r.lines = append(r.lines, transcriptLine{sender: sender, text: text})
	r.mu.Unlock()
	r.notify()
}

func (r *renderer) SetOptions(options []string) {
	r.mu.Lock()
	r.options = options
	r.mu.Unlock()
	r.notify()
}

func (r *renderer) ClearTranscript() {
	r.mu.Lock()
	r.lines = nil
	r.mu.Unlock()
	r.notify()
}

func (r *renderer) ClearInput() {
	r.mu.Lock()
	r.clearInput = true
	r.mu.Unlock()
	r.notify()
}

func (r *renderer) SetBusy(busy bool) {
	r.mu.Lock()
	r.busy = busy
	r.mu.Unlock()
	r.notify()
}

// viewState is what the model renders from.
type viewState struct {
	lines      []transcriptLine
	options    []string
	busy       bool
	clearInput bool
}

// snapshot copies the current state and consumes the pending
// input-clear flag.
func (r *renderer) snapshot() viewState {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := viewState{
		lines:      append([]transcriptLine(nil), r.lines...),
		options:    append([]string(nil), r.options...),
		busy:       r.busy,
		clearInput: r.clearInput,
	}
	r.clearInput = false
	return s
}
