package persist

import (
	"fmt"
)

// UnitError tags a failure with the index of the concurrent unit (aggregate
// or batch) it came from.
type UnitError struct {
	Unit int
	Err  error
}

func (e UnitError) Error() string {
	return fmt.Sprintf("unit %d: %v", e.Unit, e.Err)
}

func (e UnitError) Unwrap() error { return e.Err }

// AggregateError reports the failures observed across a whole fan-out after
// every unit has finished. All underlying causes are preserved and reachable
// through errors.Is / errors.As; the first one stands in as representative
// in the message.
type AggregateError struct {
	Units []UnitError
}

func (e *AggregateError) Error() string {
	if e == nil || len(e.Units) == 0 {
		return "aggregate failure"
	}
	if len(e.Units) == 1 {
		return fmt.Sprintf("1 unit failed: %v", e.Units[0])
	}
	return fmt.Sprintf("%d units failed, first: %v", len(e.Units), e.Units[0])
}

func (e *AggregateError) Unwrap() []error {
	errs := make([]error, 0, len(e.Units))
	for _, u := range e.Units {
		errs = append(errs, u)
	}
	return errs
}
