package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneClassifier_RejectsOutOfRangeCoordinates(t *testing.T) {
	c := NewZoneClassifier(ZoneTableV2)

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"lat above 90", 91, 0},
		{"lat below -90", -91, 0},
		{"lon above 180", 0, 181},
		{"lon below -180", 0, -181},
		{"both out of range", 120, 250},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, c.OceanPlausible(tc.lat, tc.lon))
		})
	}
}

func TestZoneClassifier_RejectsNaN(t *testing.T) {
	c := NewZoneClassifier(ZoneTableV2)

	assert.False(t, c.OceanPlausible(math.NaN(), 0))
	assert.False(t, c.OceanPlausible(0, math.NaN()))
	assert.False(t, c.OceanPlausible(math.NaN(), math.NaN()))
}

func TestZoneClassifier_ExcludesLandAndEnclosedSeas(t *testing.T) {
	c := NewZoneClassifier(ZoneTableV2)

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"central Kansas", 39.0, -98.0},
		{"Amazon basin", -5.0, -60.0},
		{"Sahara", 25.0, 10.0},
		{"central Siberia", 60.0, 100.0},
		{"Australian interior", -25.0, 134.0},
		{"Mediterranean", 40.0, 10.0},
		{"Red Sea", 20.0, 38.0},
		{"Java Sea", -5.0, 110.0},
		{"Antarctica", -75.0, 0.0},
		{"Arctic ice pack", 85.0, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, c.OceanPlausible(tc.lat, tc.lon))
		})
	}
}

func TestZoneClassifier_AcceptsOpenOcean(t *testing.T) {
	c := NewZoneClassifier(ZoneTableV2)

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"mid-Pacific", 0.0, -140.0},
		{"North Pacific", 35.0, -150.0},
		{"North Atlantic", 30.0, -40.0},
		{"South Atlantic", -30.0, -25.0},
		{"central Indian", -20.0, 80.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, c.OceanPlausible(tc.lat, tc.lon))
		})
	}
}

func TestZoneClassifier_ZoneEdgesAreExclusive(t *testing.T) {
	c := NewZoneClassifier(ZoneTableV2)

	// The antarctica zone ends at exactly -60; a point on the boundary
	// parallel passes through, one degree further south does not.
	assert.True(t, c.OceanPlausible(-60.0, -50.0))
	assert.False(t, c.OceanPlausible(-61.0, -50.0))
}

func TestZoneClassifier_TablesDiverge(t *testing.T) {
	// Gulf of Guinea: open ocean, but inside v1's combined Africa/Eurasia box.
	v1 := NewZoneClassifier(ZoneTableV1)
	v2 := NewZoneClassifier(ZoneTableV2)

	assert.False(t, v1.OceanPlausible(0.0, -10.0))
	assert.True(t, v2.OceanPlausible(0.0, -10.0))

	// Both tables agree on unambiguous land and ocean.
	assert.False(t, v1.OceanPlausible(39.0, -98.0))
	assert.False(t, v2.OceanPlausible(39.0, -98.0))
	assert.True(t, v1.OceanPlausible(0.0, -140.0))
	assert.True(t, v2.OceanPlausible(0.0, -140.0))
}

func TestTableByVersion(t *testing.T) {
	v1, err := TableByVersion("v1")
	require.NoError(t, err)
	assert.Len(t, v1, len(ZoneTableV1))

	v2, err := TableByVersion("v2")
	require.NoError(t, err)
	assert.Len(t, v2, len(ZoneTableV2))

	_, err = TableByVersion("v3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v3")
}
