package pattern

import "fmt"

// ExpansionError reports a row whose repeats cannot be worked out against
// the stitches available to it.
type ExpansionError struct {
	Row    int
	Reason string
}

func (e *ExpansionError) Error() string {
	return fmt.Sprintf("cannot expand row %d: %s", e.Row, e.Reason)
}

// ConsistencyError reports rows that do not fit together: duplicate or
// missing row numbers, or a stitch count that does not carry over. Expected
// and Actual are set when the violation is a count mismatch.
type ConsistencyError struct {
	Row      int
	Expected int
	Actual   int
	Reason   string
}

func (e *ConsistencyError) Error() string {
	msg := e.Reason
	if e.Expected != 0 || e.Actual != 0 {
		msg = fmt.Sprintf("%s (expected %d, got %d)", e.Reason, e.Expected, e.Actual)
	}
	if e.Row == 0 {
		return "inconsistent pattern: " + msg
	}
	return fmt.Sprintf("inconsistent pattern at row %d: %s", e.Row, msg)
}
