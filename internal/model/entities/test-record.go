package entities

// TestRecord is one row of a generated compaction test series. Counts are
// raw gauge counts, densities are pcf. Records are immutable once produced;
// only Done is toggled afterwards, as the operator writes tests up.
type TestRecord struct {
	Index         int     `json:"index"`
	DensityCount  int     `json:"density_count"`
	MoistureCount int     `json:"moisture_count"`
	WetDensity    float64 `json:"wet_density"`
	DryDensity    float64 `json:"dry_density"`
	MoistureMass  float64 `json:"moisture_mass"` // lbs/ft³, wet - dry
	MoisturePct   float64 `json:"moisture_pct"`
	CompactionPct float64 `json:"compaction_pct"`
	Done          bool    `json:"done"`
}
