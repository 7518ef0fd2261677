package request

import (
	"bytes"
	"encoding/json"
	"time"
)

// DateTime is a form date that may be unset. The dashboard sends "" or null
// for a date the admin has not picked yet; both decode to the zero time.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// DateTimeFromPtr maps nil to the unset date.
func DateTimeFromPtr(t *time.Time) DateTime {
	if t == nil {
		return DateTime{}
	}
	return DateTime{Time: *t}
}

// Ptr returns nil for an unset date.
func (d DateTime) Ptr() *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		d.Time = time.Time{}
		return nil
	}
	return d.Time.UnmarshalJSON(trimmed)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return d.Time.MarshalJSON()
}
