package compression

import (
	"fmt"
	"math"
	"strings"
)

// roiReportCap keeps the reported ROI finite on the wire when compute
// cost rounds to zero; internally the ratio is unbounded.
const roiReportCap = 999

// compressibility is the expected size reduction fraction by extension.
// Unknown extensions fall back to 0.15.
var compressibility = map[string]float64{
	"txt": 0.75, "csv": 0.72, "json": 0.70, "sql": 0.68, "log": 0.80,
	"xml": 0.78, "yaml": 0.60, "html": 0.65,
	"pdf": 0.40, "docx": 0.35, "xlsx": 0.30, "pptx": 0.25,
	"jpg": 0.02, "jpeg": 0.02, "png": 0.03, "mp4": 0.02,
	"zip": 0.01, "gz": 0.01, "tar": 0.05,
	"exe": 0.08, "bin": 0.10, "apk": 0.08,
	"pkl": 0.15, "parquet": 0.55, "pbix": 0.20,
	"fig": 0.10, "pcap": 0.45, "pst": 0.20,
}

const defaultCompressibility = 0.15

// Pricing holds the runtime-configurable cost parameters for the
// advisor. None of these are baked into the algorithm.
type Pricing struct {
	StorageCostPerGBMonth float64
	ComputeCostPerHour    float64
	CurrencyFactor        float64
	ROIThreshold          float64
	// BaseThroughputGBPerHour is the compression throughput at speed
	// factor 1.0.
	BaseThroughputGBPerHour float64
}

// DefaultPricing returns the standard pricing constants.
func DefaultPricing() Pricing {
	return Pricing{
		StorageCostPerGBMonth:   0.023,
		ComputeCostPerHour:      2.0,
		CurrencyFactor:          1.0,
		ROIThreshold:            1.5,
		BaseThroughputGBPerHour: 2.0,
	}
}

// Advice is the cost/benefit result for compressing one file.
type Advice struct {
	Recommend              bool    `json:"recommend"`
	Algorithm              string  `json:"algorithm,omitempty"`
	CompressionRatio       float64 `json:"compression_ratio"`
	CurrentSize            int64   `json:"current_size"`
	CompressedSize         int64   `json:"compressed_size"`
	CompressionTimeMinutes int     `json:"compression_time_minutes"`
	MonthlySavings         float64 `json:"monthly_savings"`
	ComputeCost            float64 `json:"cpu_cost"`
	ROIScore               float64 `json:"roi_score"`
	Reason                 string  `json:"reason"`
}

// Advisor recommends compression per file from a fixed compressibility
// table gated by return on investment.
type Advisor struct {
	pricing Pricing
}

// NewAdvisor creates an advisor with the given pricing parameters.
// Zero-valued knobs fall back to the defaults.
func NewAdvisor(pricing Pricing) *Advisor {
	def := DefaultPricing()
	if pricing.StorageCostPerGBMonth <= 0 {
		pricing.StorageCostPerGBMonth = def.StorageCostPerGBMonth
	}
	if pricing.ComputeCostPerHour < 0 {
		pricing.ComputeCostPerHour = def.ComputeCostPerHour
	}
	if pricing.CurrencyFactor <= 0 {
		pricing.CurrencyFactor = def.CurrencyFactor
	}
	if pricing.ROIThreshold <= 0 {
		pricing.ROIThreshold = def.ROIThreshold
	}
	if pricing.BaseThroughputGBPerHour <= 0 {
		pricing.BaseThroughputGBPerHour = def.BaseThroughputGBPerHour
	}
	return &Advisor{pricing: pricing}
}

// Ratio returns the table compressibility for an extension.
func Ratio(extension string) float64 {
	ext := strings.ToLower(strings.TrimPrefix(extension, "."))
	if r, ok := compressibility[ext]; ok {
		return r
	}
	return defaultCompressibility
}

// Advise computes the compression recommendation for a file. Files below
// 20% compressibility are rejected outright; the rest are recommended
// when the monthly storage saving beats the one-off compute cost by the
// configured ROI threshold.
func (a *Advisor) Advise(extension string, sizeBytes int64) Advice {
	if sizeBytes < 0 {
		sizeBytes = 0
	}
	ratio := Ratio(extension)

	if ratio < 0.20 {
		return Advice{
			Recommend:        false,
			CompressionRatio: round2(ratio),
			CurrentSize:      sizeBytes,
			Reason:           "Already compressed or low compressibility",
		}
	}

	var algorithm string
	var speedFactor float64
	switch {
	case ratio > 0.70:
		algorithm, speedFactor = "zstd-19", 0.5
	case ratio > 0.50:
		algorithm, speedFactor = "zstd-11", 1.0
	default:
		algorithm, speedFactor = "gzip-9", 2.0
	}

	sizeGB := float64(sizeBytes) / (1 << 30)
	compressedSize := int64(float64(sizeBytes) * (1 - ratio))

	hours := sizeGB / (a.pricing.BaseThroughputGBPerHour * speedFactor)
	computeCost := hours * a.pricing.ComputeCostPerHour
	monthlySavings := (sizeGB - float64(compressedSize)/(1<<30)) * a.pricing.StorageCostPerGBMonth

	roi := math.Inf(1)
	if computeCost > 1e-9 {
		roi = monthlySavings / computeCost
	}

	return Advice{
		Recommend:              roi > a.pricing.ROIThreshold,
		Algorithm:              algorithm,
		CompressionRatio:       round2(ratio),
		CurrentSize:            sizeBytes,
		CompressedSize:         compressedSize,
		CompressionTimeMinutes: int(hours * 60),
		MonthlySavings:         round2(monthlySavings * a.pricing.CurrencyFactor),
		ComputeCost:            round2(computeCost * a.pricing.CurrencyFactor),
		ROIScore:               reportROI(roi),
		Reason:                 fmt.Sprintf("High compressibility (%.0f%%) with ROI %.1fx", ratio*100, reportROI(roi)),
	}
}

func reportROI(roi float64) float64 {
	if roi > roiReportCap {
		return roiReportCap
	}
	return round2(roi)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
