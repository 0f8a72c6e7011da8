package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/spf13/pflag"
)

// parseDay accepts YYYY-MM-DD or one of today, tomorrow, yesterday.
func parseDay(s string, now time.Time) (time.Time, error) {
	today, _ := time.Parse(domain.DateLayout, now.Format(domain.DateLayout))
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: use YYYY-MM-DD", domain.ErrInvalidDate, s)
	}
	return t, nil
}

// dateValue is a pflag.Value holding a calendar day.
type dateValue struct {
	t   *time.Time
	now func() time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(p *time.Time, def time.Time, now func() time.Time) *dateValue {
	*p = def
	return &dateValue{t: p, now: now}
}

func (d *dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format(domain.DateLayout)
}

func (d *dateValue) Set(s string) error {
	t, err := parseDay(s, d.now())
	if err != nil {
		return err
	}
	*d.t = t
	return nil
}

func (d *dateValue) Type() string { return "date" }
