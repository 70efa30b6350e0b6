package uitext

import "time"

// DefaultResizeQuiet is the quiet period after which a pending resize is
// reported by Poll.
const DefaultResizeQuiet = 150 * time.Millisecond

// ResizeDebouncer collapses bursts of window-resize events into one
// notification after a quiet period. Re-selecting an atlas is cheap but
// re-laying-out every screen is not, so resize handling should only fire
// once a burst has settled.
//
// Frame-polled, no goroutines: call Notify from the resize callback and
// Poll once per frame on the same thread.
type ResizeDebouncer struct {
	quiet   time.Duration
	now     func() time.Time
	pending bool
	width   int
	height  int
	last    time.Time
}

// NewResizeDebouncer creates a debouncer. A non-positive quiet period
// falls back to DefaultResizeQuiet.
func NewResizeDebouncer(quiet time.Duration) *ResizeDebouncer {
	if quiet <= 0 {
		quiet = DefaultResizeQuiet
	}
	return &ResizeDebouncer{quiet: quiet, now: time.Now}
}

// Notify records a resize event. Only the most recent size survives a burst.
func (d *ResizeDebouncer) Notify(width, height int) {
	d.pending = true
	d.width = width
	d.height = height
	d.last = d.now()
}

// Poll reports the debounced size once the quiet period has elapsed since
// the last Notify. After a true result the pending state is cleared until
// the next Notify.
func (d *ResizeDebouncer) Poll() (width, height int, ok bool) {
	if !d.pending || d.now().Sub(d.last) < d.quiet {
		return 0, 0, false
	}
	d.pending = false
	return d.width, d.height, true
}
