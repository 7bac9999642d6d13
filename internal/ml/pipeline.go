package ml

import (
	"fmt"
	"math"

	"StockSentinel/internal/model"
)

const (
	minIntradayBars = 100
	minFeatureRows  = 50
	trainFraction   = 0.8
)

// TrainedModel is a fitted per-symbol classifier together with the feature
// row for the latest bar, ready for inference.
type TrainedModel struct {
	Symbol       string
	FeatureNames []string
	Accuracy     float64
	lastRow      []float64
	model        *booster
}

// TrainingSummary reports how a model was fit.
type TrainingSummary struct {
	Accuracy  float64
	TrainRows int
	TestRows  int
}

// Train fits a gradient-boosted classifier on a symbol's intraday bars. The
// series must carry more than 100 bars, and feature engineering must leave
// at least 50 usable rows. The split is chronological, oldest 80% for
// training, so no future bar leaks into the training set.
func Train(series *model.PriceSeries) (*TrainedModel, *TrainingSummary, error) {
	if series == nil || series.Len() < minIntradayBars {
		return nil, nil, fmt.Errorf("%w: insufficient intraday data (need at least %d candles)", model.ErrInsufficientData, minIntradayBars)
	}

	fs, err := BuildFeatures(series.Bars)
	if err != nil {
		return nil, nil, err
	}
	if len(fs.Rows) < minFeatureRows {
		return nil, nil, fmt.Errorf("%w: not enough data after feature engineering (%d rows)", model.ErrInsufficientData, len(fs.Rows))
	}

	split := int(float64(len(fs.Rows)) * trainFraction)
	trainRows, trainLabels := fs.Rows[:split], fs.Labels[:split]
	testRows, testLabels := fs.Rows[split:], fs.Labels[split:]

	b := trainBooster(trainRows, trainLabels, defaultBoostConfig())

	correct := 0
	for i, row := range testRows {
		pred := 0.0
		if b.predictProb(row) >= 0.5 {
			pred = 1.0
		}
		if pred == testLabels[i] {
			correct++
		}
	}
	accuracy := 0.0
	if len(testRows) > 0 {
		accuracy = float64(correct) / float64(len(testRows))
	}

	tm := &TrainedModel{
		Symbol:       series.Symbol,
		FeatureNames: FeatureNames,
		Accuracy:     accuracy,
		lastRow:      fs.Last,
		model:        b,
	}
	summary := &TrainingSummary{
		Accuracy:  accuracy,
		TrainRows: len(trainRows),
		TestRows:  len(testRows),
	}
	return tm, summary, nil
}

// PredictProb returns the probability that the next close is higher than the
// latest one, using the feature row captured at training time.
func (m *TrainedModel) PredictProb() float64 {
	if m == nil {
		return 0.5
	}
	return m.PredictRow(m.lastRow)
}

// PredictRow scores an arbitrary feature row. It never fails: if the model
// or the row is unusable it returns the neutral 0.5.
func (m *TrainedModel) PredictRow(row []float64) float64 {
	if m == nil || m.model == nil || len(row) != len(FeatureNames) {
		return 0.5
	}
	for _, v := range row {
		if math.IsNaN(v) {
			return 0.5
		}
	}
	return m.model.predictProb(row)
}

// Classify maps the up-probability onto a directional call with its
// confidence (the probability of the predicted side).
func (m *TrainedModel) Classify() model.Prediction {
	prob := m.PredictProb()
	p := model.Prediction{
		ProbUp:     prob,
		Direction:  model.DirectionBearish,
		Confidence: 1 - prob,
	}
	if m != nil {
		p.Symbol = m.Symbol
	}
	if prob > 0.5 {
		p.Direction = model.DirectionBullish
		p.Confidence = prob
	}
	return p
}
