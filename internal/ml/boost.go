package ml

import "math"

// boostConfig mirrors the reference hyperparameters: 100 trees of depth 5
// with a 0.05 learning rate and logistic objective. Training is fully
// deterministic (exact greedy splits, no subsampling), so repeated runs on
// the same data produce identical models.
type boostConfig struct {
	rounds       int
	learningRate float64
	maxDepth     int
}

func defaultBoostConfig() boostConfig {
	return boostConfig{rounds: 100, learningRate: 0.05, maxDepth: 5}
}

// booster is a gradient-boosted binary classifier over fixed-width feature
// rows.
type booster struct {
	base  float64 // log-odds of the training class balance
	lr    float64
	trees []*treeNode
}

func trainBooster(rows [][]float64, labels []float64, cfg boostConfig) *booster {
	pos := 0.0
	for _, y := range labels {
		pos += y
	}
	p := clampProb(pos / float64(len(labels)))
	b := &booster{
		base: math.Log(p / (1 - p)),
		lr:   cfg.learningRate,
	}

	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}

	scores := make([]float64, len(rows))
	for i := range scores {
		scores[i] = b.base
	}
	grad := make([]float64, len(rows))
	hess := make([]float64, len(rows))

	for round := 0; round < cfg.rounds; round++ {
		for i := range rows {
			pi := sigmoid(scores[i])
			grad[i] = labels[i] - pi
			hess[i] = pi * (1 - pi)
		}
		tree := buildTree(rows, grad, hess, idx, cfg.maxDepth)
		b.trees = append(b.trees, tree)
		for i := range rows {
			scores[i] += cfg.learningRate * tree.predict(rows[i])
		}
	}
	return b
}

// predictProb returns the class-1 probability for one feature row.
func (b *booster) predictProb(row []float64) float64 {
	score := b.base
	for _, t := range b.trees {
		score += b.lr * t.predict(row)
	}
	return sigmoid(score)
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func clampProb(p float64) float64 {
	const eps = 1e-6
	if p < eps {
		return eps
	}
	if p > 1-eps {
		return 1 - eps
	}
	return p
}
