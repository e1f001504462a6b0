// Command browse is a terminal presentation collaborator: it wires the
// client, repository and state holders together, subscribes to their
// snapshot streams and renders every transition. It exits non-zero when the
// list settles in an error state.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/yourorg/listings-app/gsl"
	"github.com/yourorg/listings-app/internal/domain"
	"github.com/yourorg/listings-app/internal/env"
	"github.com/yourorg/listings-app/internal/logger"
	"github.com/yourorg/listings-app/internal/repo"
	"github.com/yourorg/listings-app/internal/state"
)

func main() {
	env.Load()

	log := logger.New(env.Get("LOG_LEVEL", "warn"))
	baseURL := env.Get("LISTINGS_BASE_URL", "")
	detailID := int64(env.GetInt("BROWSE_DETAIL_ID", 0))
	settleTimeout := 30 * time.Second

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []gsl.Option{}
	if baseURL != "" {
		opts = append(opts, gsl.WithBaseURL(baseURL))
	}
	repository := repo.New(gsl.NewClient(opts...), log)

	// The list holder fetches as soon as it exists.
	list := state.NewListHolder(repository, log)
	defer list.Close()

	final, ok := waitForList(ctx, list, settleTimeout)
	if !ok {
		fmt.Fprintln(os.Stderr, "browse: list did not settle in time")
		os.Exit(1)
	}
	if final.Err != "" {
		fmt.Fprintf(os.Stderr, "browse: %s\n", final.Err)
		os.Exit(1)
	}

	fmt.Printf("%d listings\n", len(final.Properties))
	for _, p := range final.Properties {
		fmt.Println(formatRow(p))
	}
	if len(final.Properties) == 0 {
		return
	}

	if detailID == 0 {
		detailID = final.Properties[0].ID
	}

	detail := state.NewDetailHolder(repository, log)
	defer detail.Close()
	detail.Load(detailID)

	detailFinal, ok := waitForDetail(ctx, detail, settleTimeout)
	if !ok {
		fmt.Fprintln(os.Stderr, "browse: detail did not settle in time")
		os.Exit(1)
	}
	if detailFinal.Err != "" {
		fmt.Fprintf(os.Stderr, "browse: %s\n", detailFinal.Err)
		os.Exit(1)
	}
	fmt.Println("details:")
	fmt.Println(formatRow(*detailFinal.Property))
}

func waitForList(ctx context.Context, h *state.ListHolder, timeout time.Duration) (state.ListState, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return h.State(), false
		case <-timer.C:
			return h.State(), false
		case st, open := <-h.Updates():
			if !open {
				return h.State(), false
			}
			if st.Loading {
				fmt.Println("loading listings...")
				continue
			}
			return st, true
		}
	}
}

func waitForDetail(ctx context.Context, h *state.DetailHolder, timeout time.Duration) (state.DetailState, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return h.State(), false
		case <-timer.C:
			return h.State(), false
		case st, open := <-h.Updates():
			if !open {
				return h.State(), false
			}
			if st.Loading {
				fmt.Println("loading details...")
				continue
			}
			return st, true
		}
	}
}

func formatRow(p domain.Property) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %-7s %s in %s, %.0f m2, %.0f EUR (%s)",
		p.ID, p.Offer, p.PropertyType, p.City, p.AreaSqm, p.Price, p.Professional)
	if p.Rooms != nil {
		fmt.Fprintf(&b, ", %d rooms", *p.Rooms)
	}
	if p.Bedrooms != nil {
		fmt.Fprintf(&b, ", %d bedrooms", *p.Bedrooms)
	}
	if p.ImageURL == nil {
		b.WriteString(", no photo")
	}
	return b.String()
}
