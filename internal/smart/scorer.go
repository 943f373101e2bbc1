package smart

import (
	"math"

	"github.com/FairForge/guardiand/internal/store"
)

// SMART attribute keys the scorer reads. Absent keys are neutral, not
// errors: they default to 0, except seek_error_rate which is a
// higher-is-better raw value and defaults to 100.
const (
	AttrReallocatedSectors = "reallocated_sector_ct"
	AttrSeekErrorRate      = "seek_error_rate"
	AttrPowerOnHours       = "power_on_hours"
	AttrRawReadErrorRate   = "raw_read_error_rate"
	AttrUDMACRCErrors      = "udma_crc_errors"
	AttrPendingSectors     = "pending_sectors"
)

// ScoreWeights defines the penalty weight of each SMART attribute.
type ScoreWeights struct {
	ReallocatedSectors float64
	SeekErrorRate      float64
	PowerOnHours       float64
	RawReadErrorRate   float64
	UDMACRCErrors      float64
}

// HealthScorer turns a SMART snapshot into a 0-100 health score.
type HealthScorer struct {
	weights ScoreWeights
}

// NewHealthScorer creates a scorer with the standard weights.
func NewHealthScorer() *HealthScorer {
	return &HealthScorer{
		weights: ScoreWeights{
			ReallocatedSectors: -0.35,
			SeekErrorRate:      -0.25,
			PowerOnHours:       -0.15,
			RawReadErrorRate:   -0.15,
			UDMACRCErrors:      -0.10,
		},
	}
}

// Score returns a health score in [0,100]. Each attribute contributes an
// independently capped linear penalty against a base of 100.
func (h *HealthScorer) Score(attrs map[string]float64) float64 {
	score := 100.0

	reallocated := attr(attrs, AttrReallocatedSectors, 0)
	score += h.weights.ReallocatedSectors * math.Min(reallocated*2, 50)

	seekError := 100 - attr(attrs, AttrSeekErrorRate, 100)
	score += h.weights.SeekErrorRate * seekError

	powerOn := attr(attrs, AttrPowerOnHours, 0)
	score += h.weights.PowerOnHours * math.Min(powerOn/1000, 30)

	readError := attr(attrs, AttrRawReadErrorRate, 0)
	score += h.weights.RawReadErrorRate * math.Min(readError/10, 30)

	udmaErrors := attr(attrs, AttrUDMACRCErrors, 0)
	score += h.weights.UDMACRCErrors * math.Min(udmaErrors*5, 25)

	return clamp(score, 0, 100)
}

// RiskLevel maps a health score to a risk tier. The mapping is total and
// monotonic: a higher score never yields a worse tier.
func RiskLevel(score float64) store.RiskLevel {
	switch {
	case score >= 80:
		return store.RiskLow
	case score >= 60:
		return store.RiskMedium
	case score >= 40:
		return store.RiskHigh
	default:
		return store.RiskCritical
	}
}

func attr(attrs map[string]float64, key string, def float64) float64 {
	if v, ok := attrs[key]; ok {
		return v
	}
	return def
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
