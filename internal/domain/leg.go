package domain

import (
	"career-globe-service/internal/geo"
	"fmt"
	"strconv"
	"strings"
)

// Great-circle hop between two consecutive milestones. The endpoint
// coordinates are part of the cache identity, so moving a milestone
// invalidates every leg touching it.
type Leg struct {
	FromID     string
	ToID       string
	From       geo.Coordinate
	To         geo.Coordinate
	DistanceKm float64
}

// Key identifies the ordered, located pair in caches.
func (l Leg) Key() string {
	return LegKey(l.FromID, l.From, l.ToID, l.To)
}

// LegKey renders "fromID@lat,lng|toID@lat,lng" with exact float formatting.
func LegKey(fromID string, from geo.Coordinate, toID string, to geo.Coordinate) string {
	return EndpointKey(fromID, from) + "|" + EndpointKey(toID, to)
}

// EndpointKey renders one located milestone as "id@lat,lng".
func EndpointKey(id string, c geo.Coordinate) string {
	return id + "@" + strconv.FormatFloat(c.Lat, 'g', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'g', -1, 64)
}

// ParseEndpointKey is the inverse of EndpointKey.
func ParseEndpointKey(s string) (string, geo.Coordinate, error) {
	at := strings.LastIndex(s, "@")
	if at <= 0 {
		return "", geo.Coordinate{}, fmt.Errorf("parse endpoint key %q: missing id", s)
	}

	latStr, lngStr, ok := strings.Cut(s[at+1:], ",")
	if !ok {
		return "", geo.Coordinate{}, fmt.Errorf("parse endpoint key %q: missing coordinates", s)
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return "", geo.Coordinate{}, fmt.Errorf("parse endpoint key %q: lat: %w", s, err)
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return "", geo.Coordinate{}, fmt.Errorf("parse endpoint key %q: lng: %w", s, err)
	}

	return s[:at], geo.Coordinate{Lat: lat, Lng: lng}, nil
}

// ParseLegKey rebuilds the endpoints of a leg from its key. The distance is left zero.
func ParseLegKey(key string) (Leg, error) {
	fromKey, toKey, ok := strings.Cut(key, "|")
	if !ok {
		return Leg{}, fmt.Errorf("parse leg key %q: missing separator", key)
	}

	fromID, from, err := ParseEndpointKey(fromKey)
	if err != nil {
		return Leg{}, err
	}
	toID, to, err := ParseEndpointKey(toKey)
	if err != nil {
		return Leg{}, err
	}

	return Leg{FromID: fromID, ToID: toID, From: from, To: to}, nil
}

// Ordered sequence of legs visiting every milestone.
type Itinerary struct {
	Legs    []Leg
	TotalKm float64
}
