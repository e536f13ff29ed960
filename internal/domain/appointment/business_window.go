package appointment

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/service-auto/internal/httperr"
)

// Window is the shop's bookable hours. Both ends of an interval must fall on
// an hour in [OpenHour, CloseHour] and on a minute that is a multiple of
// SlotMinutes.
type Window struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int

	// Strict additionally requires start < end and an end no later than
	// CloseHour:00.
	Strict bool
}

func DefaultWindow() Window {
	return Window{OpenHour: 8, CloseHour: 17, SlotMinutes: 30}
}

var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp reads an interval bound. Timestamps carrying a zone are
// converted into loc; bare wall-clock timestamps are taken as loc time.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized timestamp " + s)
}

func (w Window) allows(t time.Time) bool {
	slot := w.SlotMinutes
	if slot <= 0 {
		slot = 1
	}
	return t.Hour() >= w.OpenHour &&
		t.Hour() <= w.CloseHour &&
		t.Minute()%slot == 0
}

// Validate checks an interval given as raw timestamps. Seconds are ignored.
// A timestamp that cannot be parsed never fits the window.
func (w Window) Validate(start, end string, loc *time.Location) error {
	outside := httperr.ErrBusiness(httperr.CodeOutsideBusinessHours)

	s, err := ParseTimestamp(start, loc)
	if err != nil {
		return outside
	}
	e, err := ParseTimestamp(end, loc)
	if err != nil {
		return outside
	}

	if !w.allows(s) || !w.allows(e) {
		return outside
	}

	if w.Strict {
		if !s.Before(e) {
			return outside
		}
		if e.Hour() == w.CloseHour && e.Minute() > 0 {
			return outside
		}
	}

	return nil
}
