package compression

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProber_Measure_RepetitiveData(t *testing.T) {
	p := NewProber()
	sample := bytes.Repeat([]byte("2026-08-01T00:00:00Z INFO request served path=/api/drives status=200\n"), 200)

	result, err := p.Measure(sample)
	require.NoError(t, err)

	assert.Equal(t, len(sample), result.SampleSize)
	assert.Greater(t, result.ZstdRatio, 0.5, "log-like data should compress well")
	assert.Greater(t, result.GzipRatio, 0.5)
	assert.Contains(t, []string{"zstd", "gzip"}, result.BestAlgorithm)
	assert.GreaterOrEqual(t, result.BestRatio, result.GzipRatio)
	assert.GreaterOrEqual(t, result.BestRatio, result.ZstdRatio)
}

func TestProber_Measure_RandomData(t *testing.T) {
	p := NewProber()
	rng := rand.New(rand.NewSource(42))
	sample := make([]byte, 64<<10)
	_, err := rng.Read(sample)
	require.NoError(t, err)

	result, err := p.Measure(sample)
	require.NoError(t, err)
	assert.Less(t, result.BestRatio, 0.05, "random data should be incompressible")
}

func TestProber_Measure_TinySample(t *testing.T) {
	p := NewProber()
	_, err := p.Measure([]byte("short"))
	assert.Error(t, err)
}

func TestProber_Measure_Reusable(t *testing.T) {
	p := NewProber()
	sample := bytes.Repeat([]byte("abcdefgh"), 1000)

	first, err := p.Measure(sample)
	require.NoError(t, err)
	second, err := p.Measure(sample)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
