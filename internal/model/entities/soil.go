package entities

// SoilCalibration holds the per-classification regression coefficients used
// to turn a dry density into a raw density count, plus the hydrogen-response
// factor for the moisture channel.
type SoilCalibration struct {
	Intercept      float64 `json:"intercept"`
	Slope          float64 `json:"slope"`
	MoistureFactor float64 `json:"moisture_factor"`
}

// SoilDescription is the three-part classification text shown beside a soil
// type: general description, field identification, typical uses.
type SoilDescription struct {
	Description    string `json:"description"`
	Identification string `json:"identification"`
	TypicalUses    string `json:"typical_uses"`
}
