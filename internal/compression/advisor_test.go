package compression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvisor_Advise_LowCompressibility(t *testing.T) {
	a := NewAdvisor(DefaultPricing())

	for _, ext := range []string{"jpg", "jpeg", "png", "mp4", "zip", "gz", "tar", "exe", "bin"} {
		t.Run(ext, func(t *testing.T) {
			// Never recommended, regardless of size.
			for _, size := range []int64{0, 1 << 20, 1 << 40} {
				advice := a.Advise(ext, size)
				assert.False(t, advice.Recommend)
				assert.Empty(t, advice.Algorithm)
				assert.Equal(t, "Already compressed or low compressibility", advice.Reason)
			}
		})
	}
}

func TestAdvisor_Advise_AlgorithmBands(t *testing.T) {
	a := NewAdvisor(DefaultPricing())

	tests := []struct {
		ext       string
		algorithm string
	}{
		{"log", "zstd-19"},  // 0.80
		{"xml", "zstd-19"},  // 0.78
		{"sql", "zstd-11"},  // 0.68
		{"yaml", "zstd-11"}, // 0.60
		{"pcap", "gzip-9"},  // 0.45
		{"pdf", "gzip-9"},   // 0.40
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			advice := a.Advise(tt.ext, 10<<30)
			assert.Equal(t, tt.algorithm, advice.Algorithm)
		})
	}
}

func TestAdvisor_Advise_LogFile(t *testing.T) {
	a := NewAdvisor(DefaultPricing())
	size := int64(10) << 30

	advice := a.Advise("log", size)
	assert.Equal(t, "zstd-19", advice.Algorithm)
	assert.Equal(t, int64(float64(size)*0.20), advice.CompressedSize)
	assert.Equal(t, 0.80, advice.CompressionRatio)
	// 10GB at 1 GB/hour effective throughput (2 GB/h * 0.5 speed).
	assert.Equal(t, 600, advice.CompressionTimeMinutes)
	// Savings 8GB*0.023=0.184/month vs compute 10h*2=20: ROI << 1.5.
	assert.False(t, advice.Recommend)
	assert.InDelta(t, 0.01, advice.ROIScore, 0.005)
}

func TestAdvisor_Advise_ROIGateIsConfigurable(t *testing.T) {
	pricing := DefaultPricing()
	pricing.ROIThreshold = 0.005

	advice := NewAdvisor(pricing).Advise("log", 10<<30)
	assert.True(t, advice.Recommend)
}

func TestAdvisor_Advise_NearZeroComputeCost(t *testing.T) {
	pricing := DefaultPricing()
	pricing.ComputeCostPerHour = 0

	advice := NewAdvisor(pricing).Advise("log", 10<<30)
	assert.True(t, advice.Recommend)
	assert.Equal(t, float64(roiReportCap), advice.ROIScore)
}

func TestAdvisor_Advise_CurrencyFactor(t *testing.T) {
	base := NewAdvisor(DefaultPricing()).Advise("csv", 20<<30)

	pricing := DefaultPricing()
	pricing.CurrencyFactor = 83
	inr := NewAdvisor(pricing).Advise("csv", 20<<30)

	assert.InDelta(t, base.MonthlySavings*83, inr.MonthlySavings, 1)
	assert.InDelta(t, base.ComputeCost*83, inr.ComputeCost, 1)
	// ROI is a pure ratio; currency cancels.
	assert.Equal(t, base.ROIScore, inr.ROIScore)
}

func TestAdvisor_Advise_NegativeSizeClamped(t *testing.T) {
	advice := NewAdvisor(DefaultPricing()).Advise("log", -100)
	assert.Zero(t, advice.CurrentSize)
	assert.Zero(t, advice.CompressedSize)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.80, Ratio("log"))
	assert.Equal(t, 0.80, Ratio("LOG"))
	assert.Equal(t, 0.80, Ratio(".log"))
	assert.Equal(t, defaultCompressibility, Ratio("xyz"))
	assert.Equal(t, defaultCompressibility, Ratio(""))
}

func TestAdvisor_Deterministic(t *testing.T) {
	a := NewAdvisor(DefaultPricing())
	first := a.Advise("json", 5<<30)
	second := a.Advise("json", 5<<30)
	assert.Equal(t, first, second)
}
