package ml

import "sort"

// treeNode is one node of a depth-limited regression tree fit on
// logistic-loss gradients. Leaves hold a Newton-step value
// sum(grad)/(sum(hess)+lambda); internal nodes route on
// feature < threshold.
type treeNode struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

const (
	regLambda      = 1.0 // L2 regularization on leaf weights
	minChildWeight = 1.0 // minimum hessian sum per child
)

// buildTree greedily grows a tree on the given row subset, choosing at each
// node the exact split with the best gain. Splits are deterministic:
// features are scanned in order and ties keep the first candidate.
func buildTree(rows [][]float64, grad, hess []float64, idx []int, depth int) *treeNode {
	var gSum, hSum float64
	for _, i := range idx {
		gSum += grad[i]
		hSum += hess[i]
	}
	leaf := &treeNode{leaf: true, value: gSum / (hSum + regLambda)}
	if depth <= 0 || len(idx) < 2 {
		return leaf
	}

	bestGain := 0.0
	bestFeature := -1
	bestThreshold := 0.0
	parentScore := gSum * gSum / (hSum + regLambda)

	nFeatures := len(rows[idx[0]])
	order := make([]int, len(idx))
	for f := 0; f < nFeatures; f++ {
		copy(order, idx)
		sort.SliceStable(order, func(a, b int) bool {
			return rows[order[a]][f] < rows[order[b]][f]
		})

		var gl, hl float64
		for k := 0; k < len(order)-1; k++ {
			i := order[k]
			gl += grad[i]
			hl += hess[i]
			// can't split between equal values
			if rows[order[k]][f] == rows[order[k+1]][f] {
				continue
			}
			gr := gSum - gl
			hr := hSum - hl
			if hl < minChildWeight || hr < minChildWeight {
				continue
			}
			gain := gl*gl/(hl+regLambda) + gr*gr/(hr+regLambda) - parentScore
			if gain > bestGain {
				bestGain = gain
				bestFeature = f
				bestThreshold = (rows[order[k]][f] + rows[order[k+1]][f]) / 2
			}
		}
	}
	if bestFeature < 0 {
		return leaf
	}

	var leftIdx, rightIdx []int
	for _, i := range idx {
		if rows[i][bestFeature] < bestThreshold {
			leftIdx = append(leftIdx, i)
		} else {
			rightIdx = append(rightIdx, i)
		}
	}
	if len(leftIdx) == 0 || len(rightIdx) == 0 {
		return leaf
	}

	return &treeNode{
		feature:   bestFeature,
		threshold: bestThreshold,
		left:      buildTree(rows, grad, hess, leftIdx, depth-1),
		right:     buildTree(rows, grad, hess, rightIdx, depth-1),
	}
}

func (n *treeNode) predict(row []float64) float64 {
	for !n.leaf {
		if row[n.feature] < n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}
