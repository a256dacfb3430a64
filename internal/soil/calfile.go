package soil

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Load reads a lab recalibration sheet in INI format and returns a Table
// with its overrides applied on top of the built-in coefficients. One
// section per soil class (the menu label), keys intercept, slope and
// moisture_factor; missing keys keep the built-in value, unknown sections
// are ignored.
//
//	[CL (Lean clay)]
//	intercept = 4250
//	slope = -29.4
//	moisture_factor = 1.31
func Load(path string) (*Table, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load calibration file: %w", err)
	}
	t := NewTable()
	for _, sec := range f.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection {
			continue
		}
		cur, ok := t.cal[name]
		if !ok {
			continue // classe sconosciuta: ignora
		}
		cur.Intercept = sec.Key("intercept").MustFloat64(cur.Intercept)
		cur.Slope = sec.Key("slope").MustFloat64(cur.Slope)
		cur.MoistureFactor = sec.Key("moisture_factor").MustFloat64(cur.MoistureFactor)
		t.cal[name] = cur
	}
	return t, nil
}
