package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ResourceKind names a listing collection; its value is also the URL segment under /api.
type ResourceKind string

const (
	KindBuses          ResourceKind = "buses"
	KindHotels         ResourceKind = "hotels"
	KindRestaurants    ResourceKind = "restaurants"
	KindPrivateCars    ResourceKind = "private-cars"
	KindTravelPackages ResourceKind = "travel-packages"
	KindDestinations   ResourceKind = "destinations"
	KindTripPlanners   ResourceKind = "trip-planners"
	KindBookings       ResourceKind = "bookings"
)

// ListingKinds are the inventory collections served by the generic listing endpoint.
var ListingKinds = []ResourceKind{
	KindBuses,
	KindHotels,
	KindRestaurants,
	KindPrivateCars,
	KindTravelPackages,
	KindDestinations,
	KindTripPlanners,
}

// AllKinds includes bookings.
func AllKinds() []ResourceKind {
	out := make([]ResourceKind, 0, len(ListingKinds)+1)
	out = append(out, ListingKinds...)
	return append(out, KindBookings)
}

func (k ResourceKind) Path() string {
	return "/" + string(k)
}

// Label is a human readable name used in response messages, e.g. "private cars".
func (k ResourceKind) Label() string {
	return strings.ReplaceAll(string(k), "-", " ")
}

// Record is an open JSON object; only "id" is guaranteed.
type Record map[string]any

const FieldID = "id"

func (r Record) ID() string {
	if r == nil {
		return ""
	}
	s, _ := r[FieldID].(string)
	return s
}

// Clone deep-copies nested objects and arrays so callers can't mutate stored records.
func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Record:
		return t.Clone()
	case map[string]any:
		return map[string]any(Record(t).Clone())
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// ToRecord converts a typed model into a Record through its JSON form.
func ToRecord(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return DecodeRecord(raw)
}

var errNotObject = errors.New("payload must be a JSON object")

// DecodeRecord parses a single JSON object. Arrays, scalars and trailing
// data are rejected. Numbers are kept as json.Number so large integers
// round-trip unchanged.
func DecodeRecord(raw []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errNotObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}
	return rec, nil
}

// Into fills a typed model from the record.
func (r Record) Into(dst any) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
