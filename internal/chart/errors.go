package chart

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchRow is returned when a row number is not in the chart.
	ErrNoSuchRow = errors.New("no such chart row")
	// ErrUnknownSymbol is returned when the key is asked about a symbol that
	// is not used by the chart.
	ErrUnknownSymbol = errors.New("symbol not found")
	// ErrNegativeShift is returned when a shift amount is below zero.
	ErrNegativeShift = errors.New("shift amount must not be negative")
)

// BoundsError reports an operation that would place a row outside the
// coordinates [0, Width).
type BoundsError struct {
	Row    int
	Start  int
	End    int
	Width  int
	Reason string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("row %d: %s: [%d, %d) does not fit in [0, %d)", e.Row, e.Reason, e.Start, e.End, e.Width)
}

func noSuchRow(number int) error {
	return fmt.Errorf("%w: %d", ErrNoSuchRow, number)
}
