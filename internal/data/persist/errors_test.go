package persist

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAggregateErrorPreservesAllCauses(t *testing.T) {
	errA := errors.New("cause a")
	errB := errors.New("cause b")
	agg := &AggregateError{Units: []UnitError{
		{Unit: 0, Err: errA},
		{Unit: 3, Err: fmt.Errorf("wrapped: %w", errB)},
	}}

	if !errors.Is(agg, errA) {
		t.Fatalf("first cause lost")
	}
	if !errors.Is(agg, errB) {
		t.Fatalf("later cause lost")
	}

	var unit UnitError
	if !errors.As(agg, &unit) {
		t.Fatalf("UnitError not reachable via errors.As")
	}
}

func TestAggregateErrorMessage(t *testing.T) {
	one := &AggregateError{Units: []UnitError{{Unit: 4, Err: errors.New("boom")}}}
	if msg := one.Error(); !strings.Contains(msg, "unit 4") || !strings.Contains(msg, "boom") {
		t.Fatalf("message %q does not identify the failing unit", msg)
	}

	many := &AggregateError{Units: []UnitError{
		{Unit: 1, Err: errors.New("first")},
		{Unit: 2, Err: errors.New("second")},
	}}
	if msg := many.Error(); !strings.Contains(msg, "2 units failed") {
		t.Fatalf("message %q does not report the failure count", msg)
	}
}

func TestFanOutEmpty(t *testing.T) {
	if err := fanOut(0, func(int) error { return errors.New("never called") }); err != nil {
		t.Fatalf("fanOut(0) = %v", err)
	}
}

func TestFanOutRunsEveryUnit(t *testing.T) {
	ran := make([]bool, 16)
	err := fanOut(len(ran), func(unit int) error {
		ran[unit] = true
		if unit%5 == 0 {
			return fmt.Errorf("unit %d boom", unit)
		}
		return nil
	})

	for i, r := range ran {
		if !r {
			t.Fatalf("unit %d never ran", i)
		}
	}
	var agg *AggregateError
	if !errors.As(err, &agg) {
		t.Fatalf("err = %T, want *AggregateError", err)
	}
	// Units 0, 5, 10, 15 fail.
	if len(agg.Units) != 4 {
		t.Fatalf("failures = %d, want 4", len(agg.Units))
	}
}
