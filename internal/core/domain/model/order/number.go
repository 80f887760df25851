package order

import (
	"fmt"
	"regexp"
	"time"

	"restaurant/internal/pkg/errs"
)

const numberDayLayout = "20060102"

var numberPattern = regexp.MustCompile(`^ORD-(\d{8})-(\d{3,})$`)

// Number is the human facing order number, ORD-YYYYMMDD-NNN.
type Number string

// NewNumber formats the seq-th order of the given day.
func NewNumber(day time.Time, seq int) (Number, error) {
	if seq <= 0 {
		return "", errs.NewValueIsOutOfRangeError("order sequence", seq, 1, "unbounded")
	}
	return Number(fmt.Sprintf("ORD-%s-%03d", day.Format(numberDayLayout), seq)), nil
}

// ParseNumber validates the textual form of an order number.
func ParseNumber(s string) (Number, error) {
	m := numberPattern.FindStringSubmatch(s)
	if m == nil {
		return "", errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%q does not match ORD-YYYYMMDD-NNN", s))
	}
	if _, err := time.Parse(numberDayLayout, m[1]); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("order number", err)
	}
	return Number(s), nil
}

func (n Number) String() string {
	return string(n)
}

func (n Number) Validate() error {
	_, err := ParseNumber(string(n))
	return err
}
