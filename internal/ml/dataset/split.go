package dataset

import (
	"math"
	"math/rand"
)

// Split shuffles row indices with the given seed and partitions them into
// train and test sets. The same n, fraction and seed always produce the
// same partition, which keeps training runs reproducible.
func Split(n int, testFraction float64, seed int64) (train, test []int) {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)

	testLen := int(math.Round(float64(n) * testFraction))
	if testLen > n {
		testLen = n
	}

	test = perm[:testLen]
	train = perm[testLen:]

	return train, test
}

// Take selects the rows of x at the given indices.
func Take(x [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, r := range idx {
		out[i] = x[r]
	}

	return out
}

// TakeVec selects the elements of y at the given indices.
func TakeVec(y []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, r := range idx {
		out[i] = y[r]
	}

	return out
}
