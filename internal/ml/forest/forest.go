// Package forest implements a seeded bagged regression forest of CART
// trees. It exists so trained models can be persisted as plain JSON and
// reloaded without any native runtime; the same data and seed always
// produce the same forest.
package forest

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// Config controls forest training. Zero values fall back to defaults:
// 100 trees, unlimited depth, leaves of at least one sample.
type Config struct {
	Trees    int
	MaxDepth int
	MinLeaf  int
	Seed     int64
}

func (c Config) withDefaults() Config {
	if c.Trees <= 0 {
		c.Trees = 100
	}

	if c.MinLeaf <= 0 {
		c.MinLeaf = 1
	}

	return c
}

// Node is one decision node. A node with no children is a leaf and
// predicts Value.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Value     float64 `json:"value"`
	Left      *Node   `json:"left,omitempty"`
	Right     *Node   `json:"right,omitempty"`
}

// Regressor is a trained forest. All fields are exported for JSON
// persistence; a loaded Regressor is immutable and safe for concurrent
// Predict calls.
type Regressor struct {
	Trees       []*Node   `json:"trees"`
	NumFeatures int       `json:"num_features"`
	Importances []float64 `json:"importances"`
}

// Train fits a forest on row-major features x against target y. Each tree
// sees a bootstrap sample drawn from a rand source seeded by cfg.Seed.
func Train(x [][]float64, y []float64, cfg Config) (*Regressor, error) {
	if len(x) == 0 {
		return nil, errors.New("empty training set")
	}

	if len(x) != len(y) {
		return nil, fmt.Errorf("feature rows %d != targets %d", len(x), len(y))
	}

	cfg = cfg.withDefaults()

	features := len(x[0])
	rng := rand.New(rand.NewSource(cfg.Seed))

	reg := &Regressor{
		NumFeatures: features,
		Importances: make([]float64, features),
	}

	for i := 0; i < cfg.Trees; i++ {
		idx := make([]int, len(x))
		for j := range idx {
			idx[j] = rng.Intn(len(x))
		}

		b := &builder{x: x, y: y, cfg: cfg, decrease: make([]float64, features)}
		reg.Trees = append(reg.Trees, b.build(idx, 0))

		var total float64
		for _, d := range b.decrease {
			total += d
		}

		if total > 0 {
			for f, d := range b.decrease {
				reg.Importances[f] += d / total
			}
		}
	}

	var sum float64
	for _, v := range reg.Importances {
		sum += v
	}

	if sum > 0 {
		for f := range reg.Importances {
			reg.Importances[f] /= sum
		}
	}

	return reg, nil
}

// Predict averages the tree predictions for one observation.
func (r *Regressor) Predict(row []float64) (float64, error) {
	if len(row) != r.NumFeatures {
		return 0, fmt.Errorf("model expects %d features, got %d", r.NumFeatures, len(row))
	}

	var sum float64
	for _, root := range r.Trees {
		n := root
		for n.Left != nil {
			if row[n.Feature] <= n.Threshold {
				n = n.Left
			} else {
				n = n.Right
			}
		}

		sum += n.Value
	}

	return sum / float64(len(r.Trees)), nil
}

// FeatureImportances returns the normalized mean impurity decrease per
// feature. Values sum to 1 unless the forest never split.
func (r *Regressor) FeatureImportances() []float64 {
	out := make([]float64, len(r.Importances))
	copy(out, r.Importances)

	return out
}

type builder struct {
	x        [][]float64
	y        []float64
	cfg      Config
	decrease []float64
}

func (b *builder) build(idx []int, depth int) *Node {
	node := &Node{Value: b.mean(idx)}

	if b.cfg.MaxDepth > 0 && depth >= b.cfg.MaxDepth {
		return node
	}

	if len(idx) < 2*b.cfg.MinLeaf {
		return node
	}

	feature, threshold, gain := b.bestSplit(idx)
	if gain <= 0 {
		return node
	}

	b.decrease[feature] += gain

	var left, right []int
	for _, i := range idx {
		if b.x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	node.Feature = feature
	node.Threshold = threshold
	node.Left = b.build(left, depth+1)
	node.Right = b.build(right, depth+1)

	return node
}

func (b *builder) mean(idx []int) float64 {
	var sum float64
	for _, i := range idx {
		sum += b.y[i]
	}

	return sum / float64(len(idx))
}

// bestSplit scans every feature for the threshold with the largest sum of
// squared error reduction. Impurity is SSE so the gain already carries the
// node weight.
func (b *builder) bestSplit(idx []int) (feature int, threshold, gain float64) {
	n := len(idx)

	var totalSum, totalSq float64
	for _, i := range idx {
		totalSum += b.y[i]
		totalSq += b.y[i] * b.y[i]
	}

	parentSSE := totalSq - totalSum*totalSum/float64(n)
	if parentSSE <= 0 {
		return 0, 0, 0
	}

	feature = -1
	sorted := make([]int, n)

	for f := 0; f < len(b.x[idx[0]]); f++ {
		copy(sorted, idx)
		sort.Slice(sorted, func(a, c int) bool {
			return b.x[sorted[a]][f] < b.x[sorted[c]][f]
		})

		var leftSum, leftSq float64
		for k := 1; k < n; k++ {
			i := sorted[k-1]
			leftSum += b.y[i]
			leftSq += b.y[i] * b.y[i]

			prev, cur := b.x[i][f], b.x[sorted[k]][f]
			if prev == cur {
				continue
			}

			if k < b.cfg.MinLeaf || n-k < b.cfg.MinLeaf {
				continue
			}

			leftSSE := leftSq - leftSum*leftSum/float64(k)
			rightSum := totalSum - leftSum
			rightSSE := (totalSq - leftSq) - rightSum*rightSum/float64(n-k)

			g := parentSSE - leftSSE - rightSSE
			if g > gain {
				feature = f
				threshold = (prev + cur) / 2
				gain = g
			}
		}
	}

	if feature < 0 {
		return 0, 0, 0
	}

	return feature, threshold, gain
}
