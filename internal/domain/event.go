package domain

import (
	"context"
	"errors"
	"time"
)

// ErrLandExcluded reports that a float position failed ocean-plausibility
// classification. The pipeline drops such events without treating them as
// transform failures.
var ErrLandExcluded = errors.New("position excluded by land filter")

// RawFloatRecord represents the flat JSON structure produced by the
// collector. All fields are strings as they appear in the ARGO index files;
// parsing is lenient and malformed values degrade to zero values.
type RawFloatRecord struct {
	Platform   string `json:"Platform"` // WMO platform number, e.g. "4902916"
	Cycle      string `json:"Cycle"`    // dive cycle count
	Date       string `json:"Date"`     // HHMM UTC, day from the message timestamp
	Lat        string `json:"Lat"`
	Lon        string `json:"Lon"`
	PositionQC string `json:"Position_QC"` // ARGO QC flag "1".."9"
	Temp       string `json:"Temp"`        // °C, shallowest bin
	Psal       string `json:"Psal"`        // practical salinity, PSU
	Pres       string `json:"Pres"`        // pressure, dbar
	Comments   string `json:"Comments"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Measurement holds the surfacing measurements. Nil means unmeasured;
// zero is a legitimate reading for every field.
type Measurement struct {
	TempC        *float64 `json:"temp_c,omitempty"`
	SalinityPSU  *float64 `json:"salinity_psu,omitempty"`
	PressureDbar *float64 `json:"pressure_dbar,omitempty"`
}

// FloatEvent is the domain-rich representation after parsing.
type FloatEvent struct {
	ID          string      `json:"id"`
	Platform    string      `json:"platform"`
	Cycle       int         `json:"cycle"`
	Geo         Geo         `json:"geo"`
	Measurement Measurement `json:"measurement,omitempty"`
	PositionQC  string      `json:"position_qc,omitempty"` // "good", "probably_good", "probably_bad", "bad", "missing"
	Basin       string      `json:"basin,omitempty"`
	EventTime   time.Time   `json:"event_time"`
	TimeBucket  time.Time   `json:"time_bucket,omitempty"`
	Comments    string      `json:"comments,omitempty"`

	RawPayload  []byte    `json:"-"`
	ProcessedAt time.Time `json:"processed_at"`
}
