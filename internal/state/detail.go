package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/yourorg/listings-app/internal/domain"
)

// DetailState is the detail screen's observable state. Property is nil until
// a load succeeds, and is cleared again when a load fails.
type DetailState struct {
	Loading  bool
	Property *domain.Property
	Err      string
}

// DetailHolder drives the detail screen. Unlike the list holder it does not
// fetch at construction: the listing id arrives from navigation, so Load
// must be called at least once before any data appears. The same sequence
// guard as the list holder drops superseded completions.
type DetailHolder struct {
	src Source
	log *slog.Logger

	mu     sync.Mutex
	state  DetailState
	seq    uint64
	ch     chan DetailState
	closed bool
}

func NewDetailHolder(src Source, log *slog.Logger) *DetailHolder {
	if log == nil {
		log = slog.Default()
	}
	return &DetailHolder{
		src: src,
		log: log.With("component", "detail_holder"),
		ch:  make(chan DetailState, snapshotBuffer),
	}
}

func (h *DetailHolder) State() DetailState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Updates streams every state transition. The channel is closed by Close.
func (h *DetailHolder) Updates() <-chan DetailState {
	return h.ch
}

// Load fetches the listing with the given id.
func (h *DetailHolder) Load(id int64) {
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

	h.log.Debug("detail fetch started", "fetch_id", fetchID, "listing_id", id, "seq", seq)
	go h.fetch(seq, fetchID, id)
}

// Retry re-issues the fetch for the given id.
func (h *DetailHolder) Retry(id int64) {
	h.Load(id)
}

func (h *DetailHolder) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	close(h.ch)
}

func (h *DetailHolder) fetch(seq uint64, fetchID string, id int64) {
	prop, err := h.src.PropertyDetails(context.Background(), id)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	if seq != h.seq {
		h.log.Debug("detail fetch superseded, dropping result", "fetch_id", fetchID, "seq", seq)
		return
	}

	next := h.state
	next.Loading = false
	if err != nil {
		next.Property = nil
		next.Err = displayError(err)
		h.log.Warn("detail fetch failed", "fetch_id", fetchID, "listing_id", id, "error", err)
	} else {
		next.Property = &prop
		next.Err = ""
		h.log.Debug("detail fetch done", "fetch_id", fetchID, "listing_id", id)
	}
	h.apply(next)
}

func (h *DetailHolder) apply(st DetailState) {
	h.state = st
	select {
	case h.ch <- st:
	default:
	}
}
