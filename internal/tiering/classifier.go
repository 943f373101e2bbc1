package tiering

import (
	"math"
	"time"

	"github.com/FairForge/guardiand/internal/store"
)

// centroid is a fixed reference point in (recency, frequency, size)
// feature space. The table is static; there is no training step.
type centroid struct {
	tier      store.TierLevel
	recency   float64
	frequency float64
	size      float64
}

// Centroids are checked in order; on a distance tie the first wins.
var centroids = []centroid{
	{store.TierHot, 0.9, 0.8, 0.3},
	{store.TierWarm, 0.6, 0.4, 0.5},
	{store.TierCold, 0.3, 0.2, 0.7},
	{store.TierArchive, 0.1, 0.05, 0.9},
}

// Classification is the classifier output for one file.
type Classification struct {
	Tier           store.TierLevel `json:"tier"`
	Confidence     float64         `json:"confidence"`
	RecencyScore   float64         `json:"recency_score"`
	FrequencyScore float64         `json:"frequency_score"`
}

// AccessClassifier assigns a storage tier by nearest-centroid distance
// over normalized access features.
type AccessClassifier struct{}

// NewAccessClassifier creates a classifier.
func NewAccessClassifier() *AccessClassifier {
	return &AccessClassifier{}
}

// Classify normalizes the file's recency, frequency and size and returns
// the nearest tier centroid. The caller supplies now so repeated calls
// over the same inputs give identical results.
func (c *AccessClassifier) Classify(lastAccessed time.Time, accessCount int, sizeBytes int64, now time.Time) Classification {
	daysSinceAccess := now.Sub(lastAccessed).Hours() / 24
	if daysSinceAccess < 0 {
		daysSinceAccess = 0
	}
	sizeGB := float64(sizeBytes) / (1 << 30)

	recency := math.Max(0, 1-daysSinceAccess/365)
	frequency := math.Min(1, float64(accessCount)/1000)
	sizeNorm := math.Min(1, sizeGB/10)

	best := centroids[0].tier
	minDistance := math.Inf(1)

	for _, ct := range centroids {
		d := math.Sqrt(
			(recency-ct.recency)*(recency-ct.recency) +
				(frequency-ct.frequency)*(frequency-ct.frequency) +
				(sizeNorm-ct.size)*(sizeNorm-ct.size))
		if d < minDistance {
			minDistance = d
			best = ct.tier
		}
	}

	confidence := math.Max(0, math.Min(1, 1-minDistance))

	return Classification{
		Tier:           best,
		Confidence:     round2(confidence),
		RecencyScore:   round2(recency),
		FrequencyScore: round2(frequency),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
