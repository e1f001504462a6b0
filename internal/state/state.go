// Package state owns the observable UI state for the two listing screens.
// Each holder publishes complete, immutable snapshots on a buffered channel;
// a snapshot is replaced whole on every transition, so subscribers never see
// a partially updated state.
package state

import (
	"context"
	"strings"

	"github.com/yourorg/listings-app/internal/domain"
)

// Source is the slice of the repository the holders depend on.
type Source interface {
	Properties(ctx context.Context) ([]domain.Property, error)
	PropertyDetails(ctx context.Context, id int64) (domain.Property, error)
}

// fallbackError is shown when a failure carries no message of its own.
const fallbackError = "An error occurred"

// snapshotBuffer sizes each holder's update channel. A lagging subscriber
// loses intermediate snapshots, never the stored state itself.
const snapshotBuffer = 16

func displayError(err error) string {
	if err == nil {
		return fallbackError
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return fallbackError
	}
	return msg
}
