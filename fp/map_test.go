package fp_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/fun_ive_go/fp"
	"github.com/on-the-ground/fun_ive_go/lambda"
)

func square(x int) int { return x * x }

func isEven(x int, _ int) bool { return x%2 == 0 }

func TestMap_Positional(t *testing.T) {
	out := fp.Map(square, fp.FromSlice([]int{1, 2, 3, 4}))

	assert.True(t, out.Positional())
	assert.Equal(t, []int{1, 4, 9, 16}, out.Values())
	assert.Equal(t, []int{0, 1, 2, 3}, out.Keys())
}

func TestMap_AssociativeBecomesSequence(t *testing.T) {
	out := fp.Map(strings.ToUpper, fp.FromMap(map[string]string{"a": "x", "b": "y"}))

	assert.True(t, out.Positional())
	assert.Equal(t, []int{0, 1}, out.Keys())
	assert.ElementsMatch(t, []string{"X", "Y"}, out.Values())
}

// tens steps through the keys 10, 20, 30.
func tens(limit int, key int) (int, string, bool) {
	next := key + 10
	if next > limit {
		return 0, "", false
	}
	return next, fmt.Sprint("v", next), true
}

func TestMap_CustomIteratorBecomesSequence(t *testing.T) {
	out := fp.Map(strings.ToUpper, fp.FromStep(tens, 30, 0))

	assert.True(t, out.Positional())
	assert.Equal(t, []int{0, 1, 2}, out.Keys())
	assert.Equal(t, []string{"V10", "V20", "V30"}, out.Values())
}

func TestMap_WithLambda(t *testing.T) {
	sq := lambda.Unary[int, int](lambda.Must("= _1 * _1"))
	out := fp.Map(sq, fp.FromSlice([]int{1, 2, 3, 4}))
	assert.Equal(t, []int{1, 4, 9, 16}, out.Values())
}

func TestMapPairs_DropsAbsent(t *testing.T) {
	half := func(v int, _ int) (int, bool) {
		if v%2 != 0 {
			return 0, false
		}
		return v / 2, true
	}

	seq := fp.MapPairs(half, fp.FromSlice([]int{1, 2, 3, 4, 6}))
	assert.Equal(t, []int{0, 1, 2}, seq.Keys())
	assert.Equal(t, []int{1, 2, 3}, seq.Values())

	keyed := fp.MapPairs(half, fp.FromMap(map[int]int{10: 1, 20: 2, 30: 4}))
	assert.Equal(t, []int{0, 1}, keyed.Keys())
	assert.ElementsMatch(t, []int{1, 2}, keyed.Values())

	withKey := fp.MapPairs(
		func(v string, k int) (string, bool) { return fmt.Sprint(k, v), k != 20 },
		fp.FromStep(tens, 30, 0),
	)
	assert.Equal(t, []string{"10v10", "30v30"}, withKey.Values())
}

func TestMapKeyed(t *testing.T) {
	invert := func(k string, v int) (int, string, bool) { return v, k, true }
	out := fp.MapKeyed(invert, fp.FromMap(map[string]int{"one": 1, "two": 2}))
	assert.Equal(t, map[int]string{1: "one", 2: "two"}, out.Map())
}

func TestFilter_Positional(t *testing.T) {
	out := fp.Filter(isEven, fp.FromSlice([]int{1, 2, 3, 4}))

	assert.Equal(t, []int{2, 4}, out.Values())
	assert.Equal(t, []int{0, 1}, out.Keys())
}

func TestFilter_Associative(t *testing.T) {
	out := fp.Filter(
		func(v int, k string) bool { return k != "skip" && v > 0 },
		fp.FromMap(map[string]int{"a": 1, "b": -1, "skip": 5}),
	)
	assert.Equal(t, map[string]int{"a": 1}, out.Map())
}

func TestFilter_CustomIteratorKeepsKeys(t *testing.T) {
	out := fp.Filter(isEven, fp.FromStep(fp.IPairs[int], []int{1, 2, 3, 4}, -1))

	assert.False(t, out.Positional())
	assert.Equal(t, map[int]int{1: 2, 3: 4}, out.Map())
}

func TestFilter_WithLambdaPredicate(t *testing.T) {
	even := lambda.Predicate[int](lambda.Must("|n| n % 2 == 0"))
	out := fp.Filter(func(v int, _ int) bool { return even(v) }, fp.FromSlice([]int{1, 2, 3, 4}))
	assert.Equal(t, []int{2, 4}, out.Values())
}

func TestChainingKeepsShape(t *testing.T) {
	evens := fp.Filter(isEven, fp.FromSlice([]int{1, 2, 3, 4, 5, 6}))
	squares := fp.Map(square, evens.Source())

	assert.True(t, squares.Positional())
	assert.Equal(t, []int{4, 16, 36}, squares.Values())

	big := fp.Filter(func(v int, _ int) bool { return v > 10 }, squares.Source())
	assert.Equal(t, []int{0, 1}, big.Keys())
	assert.Equal(t, []int{16, 36}, big.Values())
}

func TestCollect(t *testing.T) {
	out := fp.Collect(fp.FromSlice([]string{"x", "y"}))
	assert.True(t, out.Positional())
	assert.Equal(t, []string{"x", "y"}, out.Values())
}

func TestCollect_KeepsKeys(t *testing.T) {
	out := fp.Collect(fp.FromStep(tens, 20, 0))
	assert.False(t, out.Positional())
	assert.Equal(t, map[int]string{10: "v10", 20: "v20"}, out.Map())
}

func TestReduce(t *testing.T) {
	sum := fp.Reduce(func(acc, v int) int { return acc + v }, 0, fp.FromSlice([]int{1, 2, 3, 4}))
	assert.Equal(t, 10, sum)

	joined := fp.Reduce(
		func(acc string, v string) string { return acc + v },
		">",
		fp.FromStep(fp.IPairs[string], []string{"a", "b", "c"}, -1),
	)
	assert.Equal(t, ">abc", joined)

	total := fp.Reduce(func(acc, v int) int { return acc + v }, 100, fp.FromMap(map[string]int{"a": 1, "b": 2}))
	assert.Equal(t, 103, total)
}
