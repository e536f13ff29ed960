package timezone

import "time"

// DefaultTimezone is the server's local zone; interval hours are read as
// local wall-clock time unless SHOP_TIMEZONE says otherwise.
const DefaultTimezone = "Local"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

