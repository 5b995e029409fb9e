// Package geo classifies float positions as ocean-plausible and fits display
// viewports around surviving points.
//
// # Classification
//
// The default classifier tests a coordinate against an ordered table of
// axis-aligned exclusion rectangles approximating continents and the enclosed
// seas most often misclassified by marker filters (Mediterranean, Red Sea,
// the Indonesian archipelago) plus polar cutoffs. A point inside any zone is
// excluded; a point matching no zone is ocean-plausible. This trades
// geographic precision for a dependency-free O(zones) test: markers a few
// kilometres off a coastline may be misjudged either way.
//
// Two hand-tuned zone tables exist ([ZoneTableV1], [ZoneTableV2]) with
// divergent boundaries for the same landmasses. They are versioned constant
// data: callers pick one explicitly via [TableByVersion], and boundary changes
// belong in a new version rather than edits to a shipped table.
//
// Callers needing coastline fidelity can substitute [PolygonClassifier],
// which evaluates a real land geometry behind the same [Classifier]
// interface; nothing downstream changes.
//
// # Viewport fitting
//
// [FitViewport] frames a point set with a 10% proportional margin, falling
// back to a fixed 5 degree pad for degenerate (single-point or collinear)
// sets and to [DefaultViewport] for empty or non-finite input. The renderer
// downstream applies its own world-bounds clamping and zoom limits.
//
// All functions in this package are pure; zone tables are read-only after
// initialization and safe for concurrent readers.
package geo
