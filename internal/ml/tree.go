// README: Variance-reduction regression tree used as the forest base learner.
package ml

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

type node struct {
	feature   int
	threshold float64
	left      *node
	right     *node
	value     float64
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

func (n *node) predict(x []float64) float64 {
	for !n.isLeaf() {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

type treeConfig struct {
	maxDepth int
	minLeaf  int
}

// growTree recursively partitions idx by the split that minimises the
// summed squared error of the two children.
func growTree(features [][]float64, labels []float64, idx []int, depth int, cfg treeConfig) *node {
	if depth >= cfg.maxDepth || len(idx) < 2*cfg.minLeaf {
		return leafFor(labels, idx)
	}

	feature, threshold, ok := bestSplit(features, labels, idx, cfg.minLeaf)
	if !ok {
		return leafFor(labels, idx)
	}

	left := idx[:0:0]
	right := idx[:0:0]
	for _, i := range idx {
		if features[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < cfg.minLeaf || len(right) < cfg.minLeaf {
		return leafFor(labels, idx)
	}

	return &node{
		feature:   feature,
		threshold: threshold,
		left:      growTree(features, labels, left, depth+1, cfg),
		right:     growTree(features, labels, right, depth+1, cfg),
	}
}

func leafFor(labels []float64, idx []int) *node {
	vals := make([]float64, len(idx))
	for i, j := range idx {
		vals[i] = labels[j]
	}
	return &node{value: stat.Mean(vals, nil)}
}

// bestSplit scans every feature with a sorted prefix-sum sweep and returns
// the (feature, threshold) pair with the lowest child SSE. ok is false when
// no split separates the samples (all feature values identical).
func bestSplit(features [][]float64, labels []float64, idx []int, minLeaf int) (int, float64, bool) {
	n := len(idx)
	if n < 2*minLeaf {
		return 0, 0, false
	}

	bestSSE := 0.0
	bestFeature := -1
	bestThreshold := 0.0

	order := make([]int, n)
	for f := 0; f < len(features[idx[0]]); f++ {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool {
			return features[order[a]][f] < features[order[b]][f]
		})

		var sumL, sqL float64
		var sumR, sqR float64
		for _, i := range order {
			sumR += labels[i]
			sqR += labels[i] * labels[i]
		}

		for k := 0; k < n-1; k++ {
			yi := labels[order[k]]
			sumL += yi
			sqL += yi * yi
			sumR -= yi
			sqR -= yi * yi

			nL := k + 1
			nR := n - nL
			if nL < minLeaf || nR < minLeaf {
				continue
			}
			// No split between equal feature values.
			lo := features[order[k]][f]
			hi := features[order[k+1]][f]
			if lo == hi {
				continue
			}

			sse := (sqL - sumL*sumL/float64(nL)) + (sqR - sumR*sumR/float64(nR))
			if bestFeature == -1 || sse < bestSSE {
				bestSSE = sse
				bestFeature = f
				bestThreshold = (lo + hi) / 2
			}
		}
	}

	if bestFeature == -1 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}
