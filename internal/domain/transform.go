package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseRawEvent deserializes a RawEvent's value into a FloatEvent.
// It expects the flat string-typed JSON produced by the collector service.
func ParseRawEvent(raw RawEvent) (FloatEvent, error) {
	var rec RawFloatRecord
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return FloatEvent{}, fmt.Errorf("parse raw event: %w", err)
	}

	lat := parseFloatOrZero(rec.Lat)
	lon := parseFloatOrZero(rec.Lon)
	eventTime := parseHHMM(raw.Timestamp, rec.Date)

	return FloatEvent{
		ID:       generateID(rec.Platform, rec.Cycle, lat, lon, rec.Date),
		Platform: strings.TrimSpace(rec.Platform),
		Cycle:    parseIntOrZero(rec.Cycle),
		Geo:      Geo{Lat: lat, Lon: lon},
		Measurement: Measurement{
			TempC:        parseFloatPtr(rec.Temp),
			SalinityPSU:  parseFloatPtr(rec.Psal),
			PressureDbar: parseFloatPtr(rec.Pres),
		},
		PositionQC: strings.TrimSpace(rec.PositionQC),
		EventTime:  eventTime,
		Comments:   rec.Comments,

		RawPayload: raw.Value,
	}, nil
}

// EnrichFloatEvent normalizes and enriches a parsed float event: maps the
// raw position QC flag to a label, derives the ocean basin from the
// coordinate, assigns an hourly time bucket, and stamps the processing time.
// Classification against the land filter happens in the pipeline, not here:
// enrichment never drops an event.
func EnrichFloatEvent(event FloatEvent) FloatEvent {
	event.PositionQC = positionQCLabel(event.PositionQC)
	event.Basin = deriveBasin(event.Geo.Lat, event.Geo.Lon)
	event.TimeBucket = deriveTimeBucket(event.EventTime)
	event.ProcessedAt = clock.Now()
	return event
}

// positionQCLabel maps an ARGO reference table 2 flag to a readable label.
// Already-labelled values pass through so enrichment stays idempotent.
func positionQCLabel(flag string) string {
	switch flag {
	case "1":
		return "good"
	case "2":
		return "probably_good"
	case "3":
		return "probably_bad"
	case "4":
		return "bad"
	case "9":
		return "missing"
	case "good", "probably_good", "probably_bad", "bad", "missing":
		return flag
	default:
		return ""
	}
}

// deriveBasin maps a coordinate to a display basin label. Longitude bands:
// atlantic [-70, 20), indian [20, 120), pacific otherwise; latitude
// overrides: southern below -60, arctic above 66.5. Returns "" for
// out-of-range coordinates; NaN fails every comparison and also yields "".
func deriveBasin(lat, lon float64) string {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ""
	}

	switch {
	case lat <= -60:
		return "southern"
	case lat >= 66.5:
		return "arctic"
	case lon >= -70 && lon < 20:
		return "atlantic"
	case lon >= 20 && lon < 120:
		return "indian"
	case lon >= 120 || lon < -70:
		return "pacific"
	default:
		return ""
	}
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseFloatPtr parses a measurement value, returning nil for empty or
// malformed input so "unmeasured" stays distinct from a zero reading.
func parseFloatPtr(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntOrZero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// parseHHMM combines a base date with an HHMM time string (e.g. "1510" → 15:10).
func parseHHMM(baseDate time.Time, hhmm string) time.Time {
	hhmm = strings.TrimSpace(hhmm)
	if len(hhmm) < 3 {
		return baseDate
	}
	if len(hhmm) == 3 {
		hhmm = "0" + hhmm
	}

	hour, errH := strconv.Atoi(hhmm[:2])
	mins, errM := strconv.Atoi(hhmm[2:])
	if errH != nil || errM != nil || hour < 0 || hour > 23 || mins < 0 || mins > 59 {
		return baseDate
	}

	return time.Date(
		baseDate.Year(), baseDate.Month(), baseDate.Day(),
		hour, mins, 0, 0, time.UTC,
	)
}

// generateID produces a deterministic ID from the report's key fields.
// Reprocessing the same raw report yields the same ID, which keeps
// downstream upserts idempotent under replay.
func generateID(platform, cycle string, lat, lon float64, timeStr string) string {
	input := fmt.Sprintf("%s|%s|%.4f|%.4f|%s", platform, cycle, lat, lon, timeStr)
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	return "argo-" + short
}

// deriveTimeBucket truncates the event time to the hour in UTC.
// Returns zero time if the input is zero.
func deriveTimeBucket(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}

	return t.UTC().Truncate(time.Hour)
}
