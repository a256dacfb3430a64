package entities

// DepthMode indicates how the gauge source rod couples with the material.
type DepthMode string

const (
	ModeDirectTransmission DepthMode = "DS" // rod lowered into the soil
	ModeBackscatter        DepthMode = "BS" // rod flush with the surface
)

// GaugeInfo identifies a single gauge unit. Informational only: the count
// math never depends on these fields.
type GaugeInfo struct {
	ID              string `json:"id,omitempty"` // logical id per l'agent (es. "gauge-1")
	Model           string `json:"model"`
	SerialNumber    string `json:"serial_number"`
	CalibrationDate string `json:"calibration_date"`
}

// GaugeStandards holds the operator's daily standard counts, taken on the
// reference block before testing. Every simulated count is scaled by the
// ratio of these to the factory reference values.
type GaugeStandards struct {
	DensityCount  int `json:"density_standard"`
	MoistureCount int `json:"moisture_standard"`
}
