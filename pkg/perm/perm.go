package perm

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is useful for initializing permutation arrays or creating index sequences.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n < 0 {
		n = 0
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// This function is useful for calculating the size of the full permutation space.
// Note that factorials grow extremely fast: 13! = 6,227,020,800 exceeds 32-bit int,
// and 21! exceeds 64-bit int. Factorial does not guard against overflow; use
// [MaxSize] to stay within the representable range.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Inverse returns the inverse of permutation p in O(n) time: the slice q such
// that q[p[i]] = i for every position i.
//
// Applying a permutation's inverse undoes it, so Inverse is the bridge between
// "value v sits at position i" and "position i holds value v" views of the same
// arrangement. The input must be a permutation of [0, 1, ..., len(p)-1];
// Inverse does not validate this.
func Inverse(p []int) []int {
	result := make([]int, len(p))
	for i, v := range p {
		result[v] = i
	}
	return result
}

// Generate returns permutations of [0, 1, ..., n-1] in Steinhaus-Johnson-Trotter
// order: each permutation differs from the previous one by a single swap of two
// adjacent positions.
//
// If limit > 0, Generate returns at most limit permutations.
// If limit <= 0, Generate returns all n! permutations.
//
// Each returned slice is a separate allocation, safe to modify without affecting others.
//
// Generate handles edge cases gracefully:
//   - n = 0: returns [[]] (one empty permutation)
//   - n = 1: returns [[0]] (one single-element permutation)
//
// For n >= 13, the number of permutations exceeds billions. Always use a limit
// when n is large, or your program will exhaust memory.
//
// Generate returns an error for n < 0 or n > [MaxSize]. For lazy, one-at-a-time
// consumption use [New] and [Generator.Next] instead.
func Generate(n, limit int) ([][]int, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}

	capacity := limit
	if capacity <= 0 || n <= 12 {
		capacity = Factorial(min(n, 12))
		if limit > 0 && limit < capacity {
			capacity = limit
		}
	}
	result := make([][]int, 0, capacity)

	for p, ok := g.Next(); ok; p, ok = g.Next() {
		result = append(result, p)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}
