package aggregate

import "math"

const (
	// MaxVisualTemperature is the hottest temperature a like gauge shows, in °C.
	MaxVisualTemperature = 40.0
	// LikesForMaxTemperature is the like count at which the gauge saturates.
	LikesForMaxTemperature = 50.0

	coldHue = 200.0
)

// Ice level statuses shown on profiles.
const (
	IceStatusMelted  = "Fully Melted!"
	IceStatusFrozen  = "Still Frozen!"
	IceStatusMelting = "Melting..."
)

// IceGauge is the cosmetic view of a user's ice level.
type IceGauge struct {
	Level         int     `json:"level"`          // 0 melted .. 100 frozen
	MeltedPercent int     `json:"melted_percent"` // 100 - level
	Hue           float64 `json:"hue"`            // 0 red .. 200 blue
	Status        string  `json:"status"`
}

// IceGaugeFor builds the gauge for an ice level, clamping it to [0,100].
func IceGaugeFor(level int) IceGauge {
	level = min(max(level, 0), 100)

	status := IceStatusMelting
	switch level {
	case 0:
		status = IceStatusMelted
	case 100:
		status = IceStatusFrozen
	}

	return IceGauge{
		Level:         level,
		MeltedPercent: 100 - level,
		Hue:           float64(level) / 100 * coldHue,
		Status:        status,
	}
}

// Temperature is the cosmetic "warmth" of an entry derived from its likes.
type Temperature struct {
	Celsius float64 `json:"celsius"`
	Hue     float64 `json:"hue"` // 200 cold blue .. 0 hot red
}

// TemperatureFor maps a like count onto the warmth gauge.
func TemperatureFor(likes int) Temperature {
	celsius := math.Min(MaxVisualTemperature, float64(max(likes, 0))/LikesForMaxTemperature*MaxVisualTemperature)

	return Temperature{
		Celsius: celsius,
		Hue:     coldHue - coldHue*(celsius/MaxVisualTemperature),
	}
}
