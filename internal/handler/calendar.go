package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/emersion/go-ical"

	"github.com/pkordes/trip-planner/internal/domain"
)

const calendarProductID = "-//trip-planner//itinerary//EN"

// GetItineraryCalendar handles GET /trips/{tripId}/activities.ics.
// The trip is exported as an all-day event spanning its window and each
// activity as a point-in-time event, so the itinerary can be subscribed to
// from any calendar client.
func (s *Server) GetItineraryCalendar(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripId")
	if !ok {
		return
	}

	trip, activities, err := s.activities.ListByTrip(r.Context(), tripID)
	if err != nil {
		s.serviceError(w, r, err, "trip not found")
		return
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(itineraryCalendar(trip, activities, s.loc, time.Now().UTC())); err != nil {
		s.serviceError(w, r, err, "")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trip-`+trip.ID.String()+`.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// itineraryCalendar builds the VCALENDAR for a trip. The all-day trip event
// takes its dates in loc; stamp is the DTSTAMP of every event.
func itineraryCalendar(trip domain.Trip, activities []domain.Activity, loc *time.Location, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, calendarProductID)
	cal.Props.SetText("X-WR-CALNAME", trip.Destination)

	// DTEND of an all-day event is exclusive.
	tripEvent := ical.NewComponent(ical.CompEvent)
	tripEvent.Props.SetText(ical.PropUID, trip.ID.String())
	tripEvent.Props.SetText(ical.PropSummary, trip.Destination)
	tripEvent.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	tripEvent.Props.SetDate(ical.PropDateTimeStart, trip.StartsAt.In(loc))
	tripEvent.Props.SetDate(ical.PropDateTimeEnd, trip.EndsAt.In(loc).AddDate(0, 0, 1))
	cal.Children = append(cal.Children, tripEvent)

	for _, a := range activities {
		ve := ical.NewComponent(ical.CompEvent)
		ve.Props.SetText(ical.PropUID, a.ID.String())
		ve.Props.SetText(ical.PropSummary, a.Title)
		ve.Props.SetText(ical.PropLocation, trip.Destination)
		ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		ve.Props.SetDateTime(ical.PropDateTimeStart, a.OccursAt.UTC())
		cal.Children = append(cal.Children, ve)
	}
	return cal
}
