package smart

// FailurePredictor estimates days until drive failure from the health
// score and degradation indicators.
type FailurePredictor struct{}

// NewFailurePredictor creates a predictor.
func NewFailurePredictor() *FailurePredictor {
	return &FailurePredictor{}
}

// Predict returns the estimated days to failure, or nil for healthy
// drives (score >= 80). The score band picks a base horizon which the
// reallocated/pending sector counts pull in; the result never drops
// below one day.
func (p *FailurePredictor) Predict(score float64, attrs map[string]float64) *int {
	if score >= 80 {
		return nil
	}

	var baseDays float64
	switch {
	case score < 30:
		baseDays = 7
	case score < 50:
		baseDays = 14
	case score < 70:
		baseDays = 45
	default:
		baseDays = 90
	}

	degradation := 0.5*attr(attrs, AttrReallocatedSectors, 0) +
		0.3*attr(attrs, AttrPendingSectors, 0)

	days := int(baseDays - degradation)
	if days < 1 {
		days = 1
	}
	return &days
}
