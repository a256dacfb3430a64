package model

import (
	"github.com/geoservizi/gaugesim/internal/model/entities"
	"github.com/geoservizi/gaugesim/internal/model/messages"
)

// Alias per esporre tipi comuni ai servizi

type (
	ReadingEvent       = messages.ReadingEvent
	StandardCountEvent = messages.StandardCountEvent
	TestRecord         = entities.TestRecord
	TestSeries         = entities.TestSeries
	GaugeInfo          = entities.GaugeInfo
	GaugeStandards     = entities.GaugeStandards
	DepthMode          = entities.DepthMode
	SoilCalibration    = entities.SoilCalibration
	SoilDescription    = entities.SoilDescription
)

const (
	ModeDirectTransmission = entities.ModeDirectTransmission
	ModeBackscatter        = entities.ModeBackscatter
)

// ParseDepthMode normalizza il valore ricevuto su API/MQTT: tutto ciò che
// non è backscatter viene trattato come direct transmission.
func ParseDepthMode(s string) DepthMode {
	if DepthMode(s) == ModeBackscatter {
		return ModeBackscatter
	}
	return ModeDirectTransmission
}
