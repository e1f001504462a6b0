package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/yourorg/listings-app/internal/domain"
)

// ListState is the list screen's observable state.
type ListState struct {
	Loading    bool
	Properties []domain.Property
	Err        string // empty when there is no error
}

// ListHolder drives the listings screen. Construction issues the first fetch
// immediately; Reload issues another one. Each fetch gets a monotonically
// increasing sequence number, and a completion whose sequence is no longer
// current is dropped, so rapid reloads cannot interleave stale results.
type ListHolder struct {
	src Source
	log *slog.Logger

	mu     sync.Mutex
	state  ListState
	seq    uint64
	ch     chan ListState
	closed bool
}

func NewListHolder(src Source, log *slog.Logger) *ListHolder {
	if log == nil {
		log = slog.Default()
	}
	h := &ListHolder{
		src:   src,
		log:   log.With("component", "list_holder"),
		state: ListState{Properties: []domain.Property{}},
		ch:    make(chan ListState, snapshotBuffer),
	}
	h.Reload()
	return h
}

// State returns the current snapshot.
func (h *ListHolder) State() ListState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Updates streams every state transition. The channel is closed by Close.
func (h *ListHolder) Updates() <-chan ListState {
	return h.ch
}

// Reload starts a new fetch. The previous properties stay visible under the
// loading flag; any earlier in-flight fetch is superseded.
func (h *ListHolder) Reload() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.seq++
	seq := h.seq
	fetchID := uuid.NewString()

	next := h.state
	next.Loading = true
	next.Err = ""
	h.apply(next)
	h.mu.Unlock()

	h.log.Debug("list fetch started", "fetch_id", fetchID, "seq", seq)
	go h.fetch(seq, fetchID)
}

// Close tears the holder down. Completions arriving afterwards are no-ops.
func (h *ListHolder) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	close(h.ch)
}

func (h *ListHolder) fetch(seq uint64, fetchID string) {
	props, err := h.src.Properties(context.Background())

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	if seq != h.seq {
		h.log.Debug("list fetch superseded, dropping result", "fetch_id", fetchID, "seq", seq)
		return
	}

	next := h.state
	next.Loading = false
	if err != nil {
		next.Err = displayError(err)
		h.log.Warn("list fetch failed", "fetch_id", fetchID, "error", err)
	} else {
		next.Properties = props
		next.Err = ""
		h.log.Debug("list fetch done", "fetch_id", fetchID, "count", len(props))
	}
	h.apply(next)
}

// apply stores the snapshot and publishes it without blocking. Callers hold
// h.mu.
func (h *ListHolder) apply(st ListState) {
	h.state = st
	select {
	case h.ch <- st:
	default:
	}
}
