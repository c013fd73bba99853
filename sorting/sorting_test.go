package sorting_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dskit/sorting"
)

// algorithms enumerates every sort under test by name.
var algorithms = map[string]func([]int, sorting.Less[int]){
	"Bubble":    sorting.Bubble[int],
	"Selection": sorting.Selection[int],
	"Insertion": sorting.Insertion[int],
	"Merge":     sorting.Merge[int],
	"Quick":     sorting.Quick[int],
	"Heap":      sorting.Heap[int],
}

func TestAllAlgorithms_FixedInputs(t *testing.T) {
	inputs := map[string][]int{
		"empty":         {},
		"single":        {7},
		"pair":          {2, 1},
		"sorted":        {1, 2, 3, 4, 5},
		"reversed":      {5, 4, 3, 2, 1},
		"duplicates":    {3, 1, 3, 1, 3, 1},
		"all equal":     {9, 9, 9, 9},
		"mixed":         {64, 34, 25, 12, 22, 11, 90, 45},
		"negatives":     {0, -5, 3, -2, 8, -5},
		"two distinct":  {1, 0, 1, 0, 1},
		"single swap":   {1, 2, 4, 3, 5},
		"large plateau": {5, 5, 5, 1, 5, 5, 9},
	}
	for algName, alg := range algorithms {
		for inName, in := range inputs {
			t.Run(algName+"/"+inName, func(t *testing.T) {
				got := append([]int{}, in...)
				alg(got, sorting.NaturalOrder[int]())

				want := append([]int{}, in...)
				sort.Ints(want)
				assert.Equal(t, want, got)
			})
		}
	}
}

// TestAllAlgorithms_RandomPermutationProperty checks on random data that
// every algorithm returns a sorted permutation of its input.
func TestAllAlgorithms_RandomPermutationProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(11)) // deterministic run
	for algName, alg := range algorithms {
		t.Run(algName, func(t *testing.T) {
			for trial := 0; trial < 50; trial++ {
				n := rng.Intn(200)
				in := make([]int, n)
				for i := range in {
					in[i] = rng.Intn(50) // dense duplicates on purpose
				}
				got := append([]int{}, in...)
				alg(got, sorting.NaturalOrder[int]())

				require.True(t, sorting.IsSorted(got, sorting.NaturalOrder[int]()),
					"trial %d not sorted: %v", trial, got)

				want := append([]int{}, in...)
				sort.Ints(want)
				require.Equal(t, want, got, "trial %d is not a permutation of the input", trial)
			}
		})
	}
}

func TestAllAlgorithms_DescendingComparator(t *testing.T) {
	for algName, alg := range algorithms {
		t.Run(algName, func(t *testing.T) {
			got := []int{64, 34, 25, 12, 22, 11, 90, 45}
			alg(got, sorting.Descending[int]())
			assert.Equal(t, []int{90, 64, 45, 34, 25, 22, 12, 11}, got)
		})
	}
}

// TestQuick_CanonicalScenario pins the documented quick-sort example with
// both orderings.
func TestQuick_CanonicalScenario(t *testing.T) {
	asc := []int{64, 34, 25, 12, 22, 11, 90, 45}
	sorting.Quick(asc, sorting.NaturalOrder[int]())
	assert.Equal(t, []int{11, 12, 22, 25, 34, 45, 64, 90}, asc)

	desc := []int{64, 34, 25, 12, 22, 11, 90, 45}
	sorting.Quick(desc, sorting.Descending[int]())
	assert.Equal(t, []int{90, 64, 45, 34, 25, 22, 12, 11}, desc)
}

func TestReverse_FlipsOrdering(t *testing.T) {
	got := []int{3, 1, 2}
	sorting.Heap(got, sorting.Reverse(sorting.NaturalOrder[int]()))
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestIsSorted(t *testing.T) {
	asc := sorting.NaturalOrder[int]()

	assert.True(t, sorting.IsSorted([]int{}, asc))
	assert.True(t, sorting.IsSorted([]int{1}, asc))
	assert.True(t, sorting.IsSorted([]int{1, 1, 2, 3}, asc))
	assert.False(t, sorting.IsSorted([]int{1, 3, 2}, asc))
	assert.False(t, sorting.IsSorted([]int{2, 1}, asc))

	assert.True(t, sorting.IsSorted([]int{3, 2, 2, 1}, sorting.Descending[int]()))
}

// TestSortStrings exercises a non-numeric element type.
func TestSortStrings(t *testing.T) {
	got := []string{"pear", "apple", "fig", "banana"}
	sorting.Merge(got, sorting.NaturalOrder[string]())
	assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, got)
}

// TestSortStructs_ByField sorts records through a field-projecting
// predicate.
func TestSortStructs_ByField(t *testing.T) {
	type person struct {
		name string
		age  int
	}
	people := []person{{"cara", 41}, {"ann", 28}, {"bob", 35}}
	sorting.Insertion(people, func(a, b person) bool { return a.age < b.age })

	assert.Equal(t, []person{{"ann", 28}, {"bob", 35}, {"cara", 41}}, people)
}
