// Package picker owns the mutable state of one range-and-comparison
// widget instance. Transitions delegate to the pure rules in package
// period; the outward boundary is two fire-and-forget callbacks.
package picker

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"reportrange/period"
)

// ErrInvertedRange rejects an externally supplied range whose start falls
// after its end. The clamped editing paths can never produce one, so an
// inverted pair here is a caller bug worth surfacing.
var ErrInvertedRange = errors.New("range start is after its end")

// ApplyEvent records one successful apply. Events live only in this
// instance's memory; nothing is persisted.
type ApplyEvent struct {
	ID      uuid.UUID
	Range   period.Range
	Compare period.CompareOptions
	At      time.Time
}

// Widget is the in-memory state of a single picker instance. All mutation
// happens synchronously on the UI event loop; instances are not shared
// across goroutines.
type Widget struct {
	now     func() time.Time
	fyStart time.Month

	class period.Class
	rng   period.Range
	label string // selected preset label, emptied once the range is customized

	compare period.CompareOptions

	history []ApplyEvent

	onRangeChange   func(period.Range)
	onCompareChange func(period.CompareOptions)
}

// Option configures a Widget at construction.
type Option func(*Widget)

// WithClock substitutes the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) {
		if now != nil {
			w.now = now
		}
	}
}

// WithFinancialYearStart sets the month financial-year presets count from.
func WithFinancialYearStart(m time.Month) Option {
	return func(w *Widget) { w.fyStart = m }
}

// WithClass sets the initial duration class.
func WithClass(c period.Class) Option {
	return func(w *Widget) { w.class = c }
}

// WithPeriodsToCompare seeds the periods-to-compare selector.
func WithPeriodsToCompare(n int) Option {
	return func(w *Widget) { w.compare.PeriodsToCompare = period.ClampPeriods(n) }
}

// OnRangeChange registers the collaborator notified on a successful apply.
func OnRangeChange(fn func(period.Range)) Option {
	return func(w *Widget) { w.onRangeChange = fn }
}

// OnCompareChange registers the collaborator notified on every comparison
// toggle or selector change, apply or not.
func OnCompareChange(fn func(period.CompareOptions)) Option {
	return func(w *Widget) { w.onCompareChange = fn }
}

// New builds a widget starting on the duration class's default trailing
// window with default comparison options.
func New(opts ...Option) *Widget {
	w := &Widget{
		now:     time.Now,
		fyStart: time.July,
		class:   period.ThreeMonths,
		compare: period.DefaultCompareOptions(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.rng = w.class.DefaultWindow(w.now())
	return w
}

func (w *Widget) Range() period.Range            { return w.rng }
func (w *Widget) Class() period.Class            { return w.class }
func (w *Widget) Compare() period.CompareOptions { return w.compare }
func (w *Widget) FinancialYearStart() time.Month { return w.fyStart }
func (w *Widget) Now() time.Time                 { return w.now() }

// Label is the display label of the selected preset, or "" when the range
// came from the custom editor or a class switch.
func (w *Widget) Label() string { return w.label }

// Validation re-evaluates the minimum-span check against current state.
func (w *Widget) Validation() period.Validation {
	return period.Validate(w.rng.From, w.rng.To, w.class)
}

// CanApply reports whether the apply action is actionable.
func (w *Widget) CanApply() bool { return w.Validation().OK }

// SelectPreset resolves a preset label against the current moment and
// records it as the displayed label. Unrecognized labels resolve and
// display as the default preset rather than failing.
func (w *Widget) SelectPreset(label string) period.Range {
	if !period.IsPreset(label) {
		label = period.DefaultPresetLabel
	}
	w.rng = period.Resolve(label, w.now(), w.fyStart)
	w.label = label
	return w.rng
}

// SetStartMonth moves the range start to the first day of the given
// month. If that lands after the current end, the end is pushed to the
// last day of the same month; the start itself never moves further.
// Last-writer-wins: only the non-edited side is adjusted.
func (w *Widget) SetStartMonth(year int, month time.Month) period.Range {
	c := period.Cursor{Year: year, Month: month}
	from := c.Start(w.rng.From.Location())
	if from.After(w.rng.To) {
		w.rng = period.Range{From: from, To: c.End(w.rng.From.Location())}
	} else {
		w.rng.From = from
	}
	w.label = ""
	return w.rng
}

// SetEndMonth moves the range end to the last day of the given month. If
// that lands before the current start, the start is pulled to the first
// day of the same month.
func (w *Widget) SetEndMonth(year int, month time.Month) period.Range {
	c := period.Cursor{Year: year, Month: month}
	to := c.End(w.rng.To.Location())
	if to.Before(w.rng.From) {
		w.rng = period.Range{From: c.Start(w.rng.To.Location()), To: to}
	} else {
		w.rng.To = to
	}
	w.label = ""
	return w.rng
}

// SetRange is the external mutation path for callers that already hold a
// concrete pair. Unlike the month editors it refuses to repair ordering.
func (w *Widget) SetRange(r period.Range) error {
	if r.Inverted() {
		return ErrInvertedRange
	}
	w.rng = r
	w.label = ""
	return nil
}

// SetClass records the new duration class and snaps the range to the
// class's trailing default window, discarding any custom selection.
func (w *Widget) SetClass(c period.Class) period.Range {
	w.class = c
	w.rng = c.DefaultWindow(w.now())
	w.label = ""
	return w.rng
}

// StartCursor and EndCursor seed a month-grid picker from the current
// boundaries.
func (w *Widget) StartCursor() period.Cursor { return period.CursorAt(w.rng.From) }
func (w *Widget) EndCursor() period.Cursor   { return period.CursorAt(w.rng.To) }

// Comparison toggles. Each one mutates a single field and pushes the full
// updated record to the collaborator exactly once.

func (w *Widget) ToggleToPreviousPeriod() {
	w.compare.ToPreviousPeriod = !w.compare.ToPreviousPeriod
	w.notifyCompare()
}

func (w *Widget) ToggleToPreviousYear() {
	w.compare.ToPreviousYear = !w.compare.ToPreviousYear
	w.notifyCompare()
}

func (w *Widget) ToggleToFinancialYearToDate() {
	w.compare.ToFinancialYearToDate = !w.compare.ToFinancialYearToDate
	w.notifyCompare()
}

func (w *Widget) ToggleByCompany() {
	w.compare.ByCompany = !w.compare.ByCompany
	w.notifyCompare()
}

func (w *Widget) ToggleByCategoryClassLocation() {
	w.compare.ByCategoryClassLocation = !w.compare.ByCategoryClassLocation
	w.notifyCompare()
}

// SetPeriodsToCompare clamps n into 1..6 and stores it. The value is kept
// even while ToPreviousPeriod is off and the selector is hidden.
func (w *Widget) SetPeriodsToCompare(n int) {
	w.compare.PeriodsToCompare = period.ClampPeriods(n)
	w.notifyCompare()
}

// ResetCompare restores the fixed default record.
func (w *Widget) ResetCompare() {
	w.compare = period.DefaultCompareOptions()
	w.notifyCompare()
}

func (w *Widget) notifyCompare() {
	if w.onCompareChange != nil {
		w.onCompareChange(w.compare)
	}
}

// Apply emits the resolved range once and records the apply event. It
// reports false, emitting nothing, while the validator rejects the range.
func (w *Widget) Apply() (ApplyEvent, bool) {
	if !w.CanApply() {
		return ApplyEvent{}, false
	}
	event := ApplyEvent{
		ID:      uuid.New(),
		Range:   w.rng,
		Compare: w.compare,
		At:      w.now(),
	}
	w.history = append(w.history, event)
	if w.onRangeChange != nil {
		w.onRangeChange(w.rng)
	}
	return event, true
}

// History returns the apply events recorded by this instance, oldest
// first.
func (w *Widget) History() []ApplyEvent {
	return append([]ApplyEvent(nil), w.history...)
}

// LastApplied returns the most recent apply event, if any. Closing the
// panel without applying leaves state as-is, so the last event may not
// match the current range.
func (w *Widget) LastApplied() (ApplyEvent, bool) {
	if len(w.history) == 0 {
		return ApplyEvent{}, false
	}
	return w.history[len(w.history)-1], true
}
