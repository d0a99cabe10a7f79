package availability

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/pkg/event"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/emersion/go-ical"
	"github.com/gosimple/slug"
)

const productID = "-//pick-a-date//EN"

// Calendar is an iCalendar file holding the event on its best date.
type Calendar struct {
	FileName string
	Content  []byte
}

// Calendar exports the event as an all-day iCalendar event on its best date.
func (s service) Calendar(ctx context.Context, eventID string) (*Calendar, error) {
	details, err := s.eventService.Find(ctx, eventID)
	if err != nil {
		return nil, err
	}

	best := bestDate(details).Best
	if best == nil {
		return nil, errdef.NewNotFound("no availability recorded for event %q", details.Name)
	}

	content, err := encodeCalendar(details, best.Date, time.Now())
	if err != nil {
		return nil, err
	}

	return &Calendar{
		FileName: calendarFileName(details.Name),
		Content:  content,
	}, nil
}

func encodeCalendar(details *event.Details, date model.Day, now time.Time) ([]byte, error) {
	vevent := ical.NewEvent()
	vevent.Props.SetText(ical.PropUID, details.ID+"@pick-a-date")
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	vevent.Props.SetDate(ical.PropDateTimeStart, date.Time())
	vevent.Props.SetDate(ical.PropDateTimeEnd, date.AddDays(1).In(time.UTC))
	vevent.Props.SetText(ical.PropSummary, details.Name)
	if details.Description != "" {
		vevent.Props.SetText(ical.PropDescription, details.Description)
	}
	if len(details.Addresses) > 0 {
		vevent.Props.SetText(ical.PropLocation, formatAddress(details.Addresses[0]))
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Children = append(cal.Children, vevent.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar: %v", err)
	}
	return buf.Bytes(), nil
}

func formatAddress(address model.EventAddress) string {
	city := strings.TrimSpace(address.PostalCode + " " + address.City)
	var parts []string
	for _, part := range []string{address.Street, city, address.State, address.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func calendarFileName(name string) string {
	s := slug.Make(name)
	if s == "" {
		s = "event"
	}
	return s + ".ics"
}
