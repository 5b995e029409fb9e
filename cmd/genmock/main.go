// Command genmock generates deterministic ARGO float report fixtures for the
// ETL test suites: a raw JSON file matching the collector's output and a
// transformed file produced by the actual domain package, so fixture output
// matches real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -floats 12 -cycles 8 \
//	  -raw-out data/mock/argo_reports_raw.json \
//	  -out data/mock/argo_reports_transformed.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/driftline/argo-geo-etl/internal/domain"
	"github.com/driftline/argo-geo-etl/internal/geo"
)

var baseDate = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

// seedPositions anchor the synthetic fleet in distinct basins. Trajectories
// drift east-northeast from here, one step per cycle.
var seedPositions = []geo.Point{
	{Lat: 2.1, Lon: -142.7},  // equatorial Pacific
	{Lat: -33.4, Lon: -28.9}, // South Atlantic
	{Lat: 31.8, Lon: -44.2},  // North Atlantic
	{Lat: -21.6, Lon: 82.3},  // central Indian
	{Lat: 44.0, Lon: -151.5}, // Gulf of Alaska
	{Lat: -52.7, Lon: 141.8}, // south of Australia
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	floats := flag.Int("floats", 12, "number of synthetic floats")
	cycles := flag.Int("cycles", 8, "surfacing reports per float")
	rawOut := flag.String("raw-out", "", "output path for raw JSON fixture")
	out := flag.String("out", "", "output path for transformed JSON fixture")
	flag.Parse()

	if *rawOut == "" || *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -raw-out, -out")
	}

	// Fix the clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.March, 15, 6, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	rawRecords := make([]domain.RawFloatRecord, 0, *floats**cycles)
	transformed := make([]domain.FloatEvent, 0, *floats**cycles)

	for f := 0; f < *floats; f++ {
		for c := 1; c <= *cycles; c++ {
			rec := syntheticReport(f, c)
			rawRecords = append(rawRecords, rec)

			event, err := transform(rec)
			if err != nil {
				return fmt.Errorf("transforming float %d cycle %d: %w", f, c, err)
			}
			transformed = append(transformed, event)
		}
	}

	if err := writeJSON(*rawOut, rawRecords); err != nil {
		return fmt.Errorf("writing raw fixture: %w", err)
	}
	log.Printf("wrote raw fixture: %s (%d records)", *rawOut, len(rawRecords))

	if err := writeJSON(*out, transformed); err != nil {
		return fmt.Errorf("writing transformed fixture: %w", err)
	}
	log.Printf("wrote transformed fixture: %s", *out)

	printStats(transformed)
	return nil
}

// syntheticReport builds a deterministic raw report for float f at cycle c.
// Positions drift from the seed; measurements follow smooth functions of the
// indices so every run produces identical fixtures.
func syntheticReport(f, c int) domain.RawFloatRecord {
	seed := seedPositions[f%len(seedPositions)]
	lat := seed.Lat + 0.31*float64(c) + 0.7*float64(f%3)
	lon := seed.Lon + 0.57*float64(c) - 0.4*float64(f%5)

	temp := 18.0 + 8.0*math.Sin(float64(f)+0.3*float64(c))
	psal := 34.5 + 0.8*math.Cos(float64(f)*0.7)
	pres := 4.0 + 0.2*float64(c%4)

	// QC flag cycles through the common values; every 11th report is bad.
	qc := "1"
	switch {
	case (f+c)%11 == 0:
		qc = "4"
	case (f+c)%5 == 0:
		qc = "2"
	}

	return domain.RawFloatRecord{
		Platform:   fmt.Sprintf("49029%02d", 10+f),
		Cycle:      fmt.Sprintf("%d", 80+c),
		Date:       fmt.Sprintf("%02d%02d", (6+c)%24, (f*7)%60),
		Lat:        fmt.Sprintf("%.3f", lat),
		Lon:        fmt.Sprintf("%.3f", lon),
		PositionQC: qc,
		Temp:       fmt.Sprintf("%.2f", temp),
		Psal:       fmt.Sprintf("%.2f", psal),
		Pres:       fmt.Sprintf("%.1f", pres),
	}
}

// transform runs the record through the real parse and enrich steps.
func transform(rec domain.RawFloatRecord) (domain.FloatEvent, error) {
	rawJSON, err := json.Marshal(rec)
	if err != nil {
		return domain.FloatEvent{}, fmt.Errorf("marshal record: %w", err)
	}

	event, err := domain.ParseRawEvent(domain.RawEvent{
		Value:     rawJSON,
		Timestamp: baseDate,
	})
	if err != nil {
		return domain.FloatEvent{}, err
	}

	return domain.EnrichFloatEvent(event), nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(events []domain.FloatEvent) {
	classifier := geo.NewZoneClassifier(geo.ZoneTableV2)

	basinCounts := map[string]int{}
	qcCounts := map[string]int{}
	var excluded int
	points := make([]geo.Point, 0, len(events))

	for i := range events {
		e := &events[i]
		basinCounts[e.Basin]++
		qcCounts[e.PositionQC]++
		if !classifier.OceanPlausible(e.Geo.Lat, e.Geo.Lon) {
			excluded++
			continue
		}
		points = append(points, geo.Point{Lat: e.Geo.Lat, Lon: e.Geo.Lon})
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(events))
	fmt.Printf("By basin: pacific=%d, atlantic=%d, indian=%d, southern=%d, arctic=%d\n",
		basinCounts["pacific"], basinCounts["atlantic"], basinCounts["indian"],
		basinCounts["southern"], basinCounts["arctic"])
	fmt.Printf("By position QC: good=%d, probably_good=%d, bad=%d\n",
		qcCounts["good"], qcCounts["probably_good"], qcCounts["bad"])
	fmt.Printf("Excluded by v2 zone table: %d\n", excluded)

	viewport := geo.FitViewport(points)
	fmt.Printf("Fitted viewport: SW(%.3f, %.3f) NE(%.3f, %.3f), span %.0f km\n",
		viewport.SouthWest.Lat, viewport.SouthWest.Lon,
		viewport.NorthEast.Lat, viewport.NorthEast.Lon,
		geo.SpanKm(viewport))

	if len(events) > 0 {
		e := &events[0]
		fmt.Printf("\nFirst record:\n")
		fmt.Printf("  ID: %s\n", e.ID)
		fmt.Printf("  Platform: %s, Cycle: %d\n", e.Platform, e.Cycle)
		fmt.Printf("  Lat: %g, Lon: %g, Basin: %s\n", e.Geo.Lat, e.Geo.Lon, e.Basin)
		fmt.Printf("  EventTime: %s\n", e.EventTime.Format(time.RFC3339))
		fmt.Printf("  TimeBucket: %s\n", e.TimeBucket.Format(time.RFC3339))
	}
}
