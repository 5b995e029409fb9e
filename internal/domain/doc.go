// Package domain models ARGO float surfacing reports.
//
// # Data Source
//
// ARGO floats are autonomous profiling buoys that drift at depth, surface on
// a roughly 10-day cycle, and transmit their position and measurements via
// satellite. The upstream collector service polls the ARGO GDAC index files,
// flattens each surfacing report into string-typed JSON, and publishes one
// message per report to the Kafka source topic.
//
// # ARGO Data Conventions
//
// Platform identifier:
//
//	The WMO platform number, e.g. "4902916". Seven digits for floats
//	deployed after 2017, five for some legacy platforms. Opaque here.
//
// Cycle number:
//
//	Integer count of completed dive cycles, starting at 0 or 1 depending on
//	the deployment. Malformed values are treated as 0.
//
// Time format:
//
//	"HHMM" in 24-hour UTC notation, e.g. "1510" = 15:10. Three-digit values
//	are zero-padded: "930" → "0930". The date portion comes from the Kafka
//	message timestamp (set by the collector from the index file date).
//
// Position QC flags (ARGO reference table 2, single character):
//
//	"1" good | "2" probably good | "3" probably bad | "4" bad | "9" missing.
//	Mapped to readable labels by [EnrichFloatEvent]; unknown flags map to "".
//	QC labels describe the position fix quality, not ocean plausibility;
//	a "good" fix on a beached float still gets filtered by the classifier.
//
// Measurements:
//
//	Temp (°C), Psal (practical salinity, PSU), Pres (dbar) from the
//	shallowest bin of the profile. Empty or malformed values become nil
//	(unmeasured), never zero: 0 °C is a legitimate polar reading.
//
// Basin labels:
//
//	Derived from the coordinate by longitude band: atlantic [-70, 20),
//	indian [20, 120), pacific otherwise; southern below -60 lat, arctic
//	above 66.5. A display grouping, not an oceanographic boundary.
//
// # ID Generation
//
// Event IDs are deterministic SHA-256 hashes of platform|cycle|lat|lon|time.
// This enables idempotent upserts downstream and replay safety without
// distributed coordination. See [generateID].
package domain
