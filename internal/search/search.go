package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sizzilia/storefront/internal/models"
)

// ProductLister fetches the full catalog; filtering happens on this side.
type ProductLister interface {
	Products(ctx context.Context) ([]models.Product, error)
}

// Result is delivered once per settled query.
type Result struct {
	Query    string
	Products []models.Product
	Err      error
}

// Debounced coalesces search-as-you-type input: each keystroke supersedes
// the pending timer, and every dispatched query carries a sequence number so
// that a slow response for an old query can never overwrite the results of a
// newer one.
type Debounced struct {
	lister  ProductLister
	delay   time.Duration
	deliver func(Result)

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func NewDebounced(lister ProductLister, delay time.Duration, deliver func(Result)) *Debounced {
	return &Debounced{lister: lister, delay: delay, deliver: deliver}
}

// Query schedules q after the debounce delay, cancelling any pending timer.
func (d *Debounced) Query(q string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.run(seq, q) })
}

// Stop cancels a pending query without delivering anything.
func (d *Debounced) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
	}
}

func (d *Debounced) run(seq uint64, q string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := d.lister.Products(ctx)

	d.mu.Lock()
	stale := seq != d.seq
	d.mu.Unlock()
	if stale {
		// a newer query was typed while this one was in flight
		return
	}

	res := Result{Query: q, Err: err}
	if err == nil {
		res.Products = Filter(items, q)
	}
	d.deliver(res)
}

// Filter matches name, category and description case-insensitively. An
// empty query returns the whole list.
func Filter(items []models.Product, q string) []models.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}

	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}
