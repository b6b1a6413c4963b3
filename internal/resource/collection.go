// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// State is a copy of a collection's displayed page.
type State[T any] struct {
	Items []T
	// Pagination is nil until the first successful fetch and after an error.
	Pagination *models.PaginationInfo
	Loading    bool
	// Err is the message to show, empty when the last operation succeeded.
	Err     string
	Filters models.FetchParams
}

// Messages are the fallback texts of each operation.
type Messages struct {
	Load   string
	Add    string
	Update string
	Delete string
}

func (m Messages) withDefaults() Messages {
	if m.Load == "" {
		m.Load = "Failed to load data."
	}
	if m.Add == "" {
		m.Add = "Failed to add data."
	}
	if m.Update == "" {
		m.Update = "Failed to update data."
	}
	if m.Delete == "" {
		m.Delete = "Failed to delete data."
	}
	return m
}

// Options configure a [Collection].
type Options[T Record, P any] struct {
	// Name tags log entries, e.g. "income".
	Name string
	// Filters is the initial query. A zero value becomes the current month.
	Filters models.FetchParams
	// Messages are shown when a failure carries no backend message.
	Messages Messages
	// Demo returns the guest-mode dataset for params.
	Demo func(params models.FetchParams) []T
	// DemoDelay is the artificial latency of guest fetches.
	DemoDelay time.Duration
	// Validate checks payloads before Add and Update send them.
	Validate func(payload P) error
}

// Collection is one paginated list of records kept in sync with the
// backend. It is safe for concurrent use.
type Collection[T Record, P any] struct {
	backend Backend[T, P]
	session GuestChecker
	opts    Options[T, P]
	logger  *logger.Logger

	mu    sync.Mutex
	seq   uint64
	state State[T]
}

// NewCollection returns an empty collection. Nothing is fetched until Load.
func NewCollection[T Record, P any](backend Backend[T, P], session GuestChecker, opts Options[T, P], log *logger.Logger) *Collection[T, P] {
	if opts.Filters == (models.FetchParams{}) {
		opts.Filters = models.DefaultFetchParams(time.Now(), models.DefaultPageLimit)
	}
	opts.Messages = opts.Messages.withDefaults()

	return &Collection[T, P]{
		backend: backend,
		session: session,
		opts:    opts,
		logger:  resourceLogger(log, opts.Name),
		state:   State[T]{Filters: opts.Filters},
	}
}

// State returns a copy of the current state.
func (c *Collection[T, P]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.state
	st.Items = slices.Clone(c.state.Items)
	if c.state.Pagination != nil {
		p := *c.state.Pagination
		st.Pagination = &p
	}
	return st
}

// Load fetches the page selected by the current filters.
func (c *Collection[T, P]) Load(ctx context.Context) error {
	return c.fetch(ctx, c.filters())
}

// Refresh is Load under the name the UI uses after external changes.
func (c *Collection[T, P]) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// SetFilters replaces the query and fetches it. A changed date range starts
// again at page 1.
func (c *Collection[T, P]) SetFilters(ctx context.Context, filters models.FetchParams) error {
	if !filters.SameDateRange(c.filters()) {
		filters.Page = 1
	}
	return c.fetch(ctx, filters)
}

// GoToPage fetches page n. It does nothing when n is below 1 or beyond the
// known page count.
func (c *Collection[T, P]) GoToPage(ctx context.Context, n int) error {
	c.mu.Lock()
	pagination := c.state.Pagination
	filters := c.state.Filters
	c.mu.Unlock()

	if n < 1 || (pagination != nil && n > pagination.TotalPages) {
		return nil
	}
	return c.fetch(ctx, filters.WithPage(n))
}

// Add creates a record and shows the first page, where the newest records
// are.
func (c *Collection[T, P]) Add(ctx context.Context, payload P) (T, error) {
	var zero T
	if err := c.checkWrite(payload); err != nil {
		return zero, err
	}

	created, err := c.backend.Create(ctx, payload)
	if err != nil {
		c.fail("add", err, c.opts.Messages.Add)
		return zero, err
	}

	c.logger.Info().Int64("id", created.RecordID()).Msg("record created")
	return created, c.fetch(ctx, c.filters().WithPage(1))
}

// Update replaces a record and reloads the current page.
func (c *Collection[T, P]) Update(ctx context.Context, id int64, payload P) (T, error) {
	var zero T
	if err := c.checkWrite(payload); err != nil {
		return zero, err
	}

	updated, err := c.backend.Update(ctx, id, payload)
	if err != nil {
		c.fail("update", err, c.opts.Messages.Update)
		return zero, err
	}

	c.logger.Info().Int64("id", id).Msg("record updated")
	return updated, c.fetch(ctx, c.filters())
}

// Delete removes a record and reloads the current page. When the record was
// the only one on a page after the first, the previous page is loaded.
func (c *Collection[T, P]) Delete(ctx context.Context, id int64) error {
	if c.session.IsGuest() {
		c.setErr(GuestReadOnlyMessage)
		return ErrGuestReadOnly
	}

	c.mu.Lock()
	filters := c.state.Filters
	lastOnPage := len(c.state.Items) == 1 && c.state.Items[0].RecordID() == id
	c.mu.Unlock()

	if err := c.backend.Delete(ctx, id); err != nil {
		c.fail("delete", err, c.opts.Messages.Delete)
		return err
	}

	c.logger.Info().Int64("id", id).Msg("record deleted")
	if page := filters.CurrentPage(); lastOnPage && page > 1 {
		filters = filters.WithPage(page - 1)
	}
	return c.fetch(ctx, filters)
}

func (c *Collection[T, P]) checkWrite(payload P) error {
	if c.session.IsGuest() {
		c.setErr(GuestReadOnlyMessage)
		return ErrGuestReadOnly
	}
	if c.opts.Validate != nil {
		if err := c.opts.Validate(payload); err != nil {
			c.setErr(err.Error())
			return err
		}
	}
	return nil
}

// fetch loads params and applies the result only if no later fetch was
// issued in the meantime.
func (c *Collection[T, P]) fetch(ctx context.Context, params models.FetchParams) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state.Filters = params
	c.state.Loading = true
	c.state.Err = ""
	c.mu.Unlock()

	if c.session.IsGuest() {
		if err := sleep(ctx, c.opts.DemoDelay); err != nil {
			c.finish(seq, func() {})
			return err
		}
		c.finish(seq, func() { c.showDemo(params) })
		return nil
	}

	page, err := c.backend.List(ctx, params)

	applied := c.finish(seq, func() {
		switch {
		case err == nil:
			c.state.Items = page.Data
			p := page.Pagination
			c.state.Pagination = &p
		case c.session.IsGuest():
			c.showDemo(params)
		default:
			c.state.Items = nil
			c.state.Pagination = nil
			c.state.Err = adapter.ErrorMessage(err, c.opts.Messages.Load)
		}
	})
	if !applied {
		c.logger.Debug().Uint64("seq", seq).Msg("discarded stale response")
		return nil
	}
	if err != nil {
		c.logger.Err(err).Str("func", "Collection.fetch").Msg("fetch failed")
		if c.session.IsGuest() {
			return nil
		}
	}
	return err
}

// finish runs apply under the lock when seq is still the latest fetch.
func (c *Collection[T, P]) finish(seq uint64, apply func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return false
	}
	c.state.Loading = false
	apply()
	return true
}

// showDemo must be called with mu held.
func (c *Collection[T, P]) showDemo(params models.FetchParams) {
	var items []T
	if c.opts.Demo != nil {
		items = c.opts.Demo(params)
	}
	page := models.SinglePage(items, params.Limit)
	c.state.Items = page.Data
	c.state.Pagination = &page.Pagination
	c.state.Err = ""
}

func (c *Collection[T, P]) fail(op string, err error, fallback string) {
	c.logger.Err(err).Str("func", "Collection."+op).Msg("write failed")
	c.setErr(adapter.ErrorMessage(err, fallback))
}

func (c *Collection[T, P]) setErr(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Err = msg
}

func (c *Collection[T, P]) filters() models.FetchParams {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Filters
}
