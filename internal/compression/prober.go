package compression

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ProbeResult is a measured compressibility for a data sample, as
// opposed to the advisor's extension-table estimate.
type ProbeResult struct {
	SampleSize    int     `json:"sample_size"`
	ZstdRatio     float64 `json:"zstd_ratio"`
	GzipRatio     float64 `json:"gzip_ratio"`
	BestAlgorithm string  `json:"best_algorithm"`
	BestRatio     float64 `json:"best_ratio"`
}

// Prober measures real compressibility by running a sample through zstd
// and gzip. Callers with bytes in hand can use it to refine the static
// extension table before acting on an advisor recommendation.
type Prober struct {
	encoder     *zstd.Encoder
	encoderOnce sync.Once
	encoderErr  error
}

// NewProber creates a prober.
func NewProber() *Prober {
	return &Prober{}
}

func (p *Prober) getEncoder() (*zstd.Encoder, error) {
	p.encoderOnce.Do(func() {
		p.encoder, p.encoderErr = zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithEncoderConcurrency(1),
		)
	})
	return p.encoder, p.encoderErr
}

// Measure compresses the sample with both codecs and reports the size
// reduction fraction of each. Tiny samples are rejected; their ratios
// are dominated by framing overhead.
func (p *Prober) Measure(sample []byte) (ProbeResult, error) {
	if len(sample) < 512 {
		return ProbeResult{}, fmt.Errorf("sample too small to probe: %d bytes", len(sample))
	}

	encoder, err := p.getEncoder()
	if err != nil {
		return ProbeResult{}, fmt.Errorf("create zstd encoder: %w", err)
	}
	zstdOut := encoder.EncodeAll(sample, make([]byte, 0, len(sample)))

	var buf bytes.Buffer
	gz, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("create gzip writer: %w", err)
	}
	if _, err := gz.Write(sample); err != nil {
		return ProbeResult{}, fmt.Errorf("gzip sample: %w", err)
	}
	if err := gz.Close(); err != nil {
		return ProbeResult{}, fmt.Errorf("flush gzip sample: %w", err)
	}

	result := ProbeResult{
		SampleSize: len(sample),
		ZstdRatio:  reduction(len(sample), len(zstdOut)),
		GzipRatio:  reduction(len(sample), buf.Len()),
	}
	if result.ZstdRatio >= result.GzipRatio {
		result.BestAlgorithm = "zstd"
		result.BestRatio = result.ZstdRatio
	} else {
		result.BestAlgorithm = "gzip"
		result.BestRatio = result.GzipRatio
	}
	return result, nil
}

// reduction returns the saved fraction, floored at zero for samples
// that grow under compression.
func reduction(original, compressed int) float64 {
	if original == 0 || compressed >= original {
		return 0
	}
	return 1 - float64(compressed)/float64(original)
}
