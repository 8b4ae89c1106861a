package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint represents a geographic point (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// GeoJSONPoint is the object form of a geometry input. Coordinates are ordered
// [longitude, latitude], as in GeoJSON.
type GeoJSONPoint struct {
	Type        string    `json:"type,omitempty" bson:"type,omitempty"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// WKT renders the point in well-known-text form, longitude first.
func (p GeoPoint) WKT() string {
	return fmt.Sprintf("POINT(%g %g)", p.Lng, p.Lat)
}

// Valid reports whether the point lies within WGS 84 bounds.
func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// ParseGeometry normalizes a raw geometry value into a GeoPoint. Accepted shapes:
//
//   - WKT point string: "POINT(lon lat)"
//   - GeoJSONPoint (or pointer)
//   - map / bson document with a "coordinates" array of [lon, lat]
//
// Anything else, including nil, malformed strings, and out-of-range coordinates,
// yields nil. The function never panics; upstream geometry is externally sourced
// and frequently absent.
func ParseGeometry(raw any) *GeoPoint {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return parseWKTPoint(v)
	case GeoPoint:
		return checkedPoint(v.Lat, v.Lng)
	case *GeoPoint:
		if v == nil {
			return nil
		}
		return checkedPoint(v.Lat, v.Lng)
	case GeoJSONPoint:
		return pointFromFloats(v.Coordinates)
	case *GeoJSONPoint:
		if v == nil {
			return nil
		}
		return pointFromFloats(v.Coordinates)
	case map[string]any:
		return pointFromCoords(v["coordinates"])
	case bson.M:
		return pointFromCoords(v["coordinates"])
	case bson.D:
		for _, e := range v {
			if e.Key == "coordinates" {
				return pointFromCoords(e.Value)
			}
		}
		return nil
	default:
		// Unrecognized geometry shape.
		return nil
	}
}

// parseWKTPoint parses "POINT(lon lat)". The lon-lat ordering is part of the WKT
// contract and must not be swapped.
func parseWKTPoint(s string) *GeoPoint {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(strings.ToUpper(s), "POINT") {
		return nil
	}
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return nil
	}
	fields := strings.Fields(s[open+1 : end])
	if len(fields) != 2 {
		return nil
	}
	lng, err1 := strconv.ParseFloat(fields[0], 64)
	lat, err2 := strconv.ParseFloat(fields[1], 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return checkedPoint(lat, lng)
}

// pointFromCoords extracts [lon, lat] from the loosely-typed array shapes the
// Mongo driver and JSON decoding produce.
func pointFromCoords(raw any) *GeoPoint {
	switch v := raw.(type) {
	case []float64:
		return pointFromFloats(v)
	case []any:
		return pointFromAny(v)
	case primitive.A:
		return pointFromAny(v)
	default:
		return nil
	}
}

func pointFromFloats(coords []float64) *GeoPoint {
	if len(coords) < 2 {
		return nil
	}
	return checkedPoint(coords[1], coords[0])
}

func pointFromAny(coords []any) *GeoPoint {
	if len(coords) < 2 {
		return nil
	}
	lng, ok1 := toFloat(coords[0])
	lat, ok2 := toFloat(coords[1])
	if !ok1 || !ok2 {
		return nil
	}
	return checkedPoint(lat, lng)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func checkedPoint(lat, lng float64) *GeoPoint {
	p := GeoPoint{Lat: lat, Lng: lng}
	if !p.Valid() {
		return nil
	}
	return &p
}
