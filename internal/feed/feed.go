// Package feed accumulates generated records as the user scrolls.
//
// The driver reacts to two events. An options change starts a new epoch:
// the collection is cleared, the page cursor resets to 1 and the first
// InitialBatch records are generated. A near-bottom signal advances the
// cursor and requests PageSize more records at offsets
// [cursor*PageSize, cursor*PageSize+PageSize).
//
// Fetching is split into request, fill and commit so the fill can run off
// the event loop. A batch is committed only if its epoch is still current,
// so an options change always wins over a batch that was in flight.
package feed

import (
	"log/slog"
	"slices"

	"github.com/zarlcorp/zfake/internal/identity"
)

const (
	// InitialBatch is the number of records generated when an epoch starts.
	InitialBatch = 20

	// PageSize is the number of records appended per scroll signal.
	PageSize = 10

	// DefaultThreshold is the default distance, in rows, from the bottom
	// that counts as near-bottom.
	DefaultThreshold = 3
)

// Generator produces consecutive records for a snapshot.
type Generator interface {
	Batch(opts identity.Options, start int64, n int) []identity.User
}

// Request describes one page to generate.
type Request struct {
	Epoch  uint64
	Cursor int
	Opts   identity.Options
	Start  int64
	Count  int
}

// Batch is a filled request waiting to be committed.
type Batch struct {
	Request
	Users []identity.User
}

// Driver owns the record collection and page cursor. It is not safe for
// concurrent use; all methods run on the event loop.
type Driver struct {
	gen       Generator
	threshold int
	log       *slog.Logger

	opts    identity.Options
	started bool
	epoch   uint64
	cursor  int
	pending bool
	records []identity.User
}

// New creates a driver. A negative threshold uses DefaultThreshold and a
// nil logger discards output.
func New(gen Generator, threshold int, log *slog.Logger) *Driver {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Driver{gen: gen, threshold: threshold, log: log}
}

// SetOptions handles an options change. It reports whether a new epoch
// started; an equal snapshot after the first call is ignored.
func (d *Driver) SetOptions(opts identity.Options) bool {
	if d.started && opts == d.opts {
		return false
	}

	d.started = true
	d.opts = opts
	d.epoch++
	d.cursor = 1
	d.pending = false
	d.records = d.gen.Batch(opts, 0, InitialBatch)

	d.log.Debug("epoch reset",
		"epoch", d.epoch,
		"region", opts.Region.String(),
		"mistake_rate", opts.MistakeRate,
		"seed", opts.Seed,
		"records", len(d.records),
	)
	return true
}

// NearBottom handles a scroll signal with distance rows left below the
// viewport. It returns a request when a new page should be fetched. Only
// one request is outstanding per epoch.
func (d *Driver) NearBottom(distance int) (Request, bool) {
	if !d.started || d.pending || distance > d.threshold {
		return Request{}, false
	}

	d.cursor++
	d.pending = true
	return Request{
		Epoch:  d.epoch,
		Cursor: d.cursor,
		Opts:   d.opts,
		Start:  int64(d.cursor * PageSize),
		Count:  PageSize,
	}, true
}

// Fill generates the records for req. It reads no driver state beyond the
// generator.
func (d *Driver) Fill(req Request) Batch {
	return Fill(d.gen, req)
}

// Fill generates the records for req using gen.
func Fill(gen Generator, req Request) Batch {
	return Batch{Request: req, Users: gen.Batch(req.Opts, req.Start, req.Count)}
}

// Commit appends b if it belongs to the current epoch and cursor. Stale
// batches are dropped and Commit reports false.
func (d *Driver) Commit(b Batch) bool {
	if b.Epoch != d.epoch || b.Cursor != d.cursor || !d.pending {
		d.log.Debug("stale batch dropped",
			"batch_epoch", b.Epoch,
			"epoch", d.epoch,
			"batch_cursor", b.Cursor,
			"cursor", d.cursor,
		)
		return false
	}

	d.pending = false
	d.records = append(d.records, b.Users...)
	d.log.Debug("batch committed", "epoch", d.epoch, "cursor", d.cursor, "records", len(d.records))
	return true
}

// Scroll handles a scroll signal synchronously: request, fill and commit.
func (d *Driver) Scroll(distance int) bool {
	req, ok := d.NearBottom(distance)
	if !ok {
		return false
	}
	return d.Commit(d.Fill(req))
}

// Records returns a copy of the collection in display order.
func (d *Driver) Records() []identity.User {
	return slices.Clone(d.records)
}

// Len returns the number of records in the collection.
func (d *Driver) Len() int {
	return len(d.records)
}

// Cursor returns the current page cursor.
func (d *Driver) Cursor() int {
	return d.cursor
}

// Epoch returns the current epoch, starting at 1 after the first
// SetOptions call.
func (d *Driver) Epoch() uint64 {
	return d.epoch
}

// Options returns the current snapshot.
func (d *Driver) Options() identity.Options {
	return d.opts
}

// Pending reports whether a fetch is in flight.
func (d *Driver) Pending() bool {
	return d.pending
}

// Threshold returns the near-bottom distance in rows.
func (d *Driver) Threshold() int {
	return d.threshold
}
