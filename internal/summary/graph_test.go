package summary

import (
	"testing"

	"ScoreScreenApi/internal/assert"
)

func TestNewGraph(t *testing.T) {
	graph, err := NewGraph([]int64{0, 10, 20}, []int64{5, 50, 120})
	assert.NilError(t, err)
	assert.Equal(t, graph.Len(), 3)

	_, err = NewGraph([]int64{0, 10}, []int64{5})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestGraphRepresentationsAgree(t *testing.T) {
	points := []Point{{0, 5}, {10, 50}, {20, 120}}

	fromPoints := NewGraphFromPoints(points)
	fromSlices, err := NewGraph([]int64{0, 10, 20}, []int64{5, 50, 120})
	assert.NilError(t, err)

	assert.Int64SliceEqual(t, fromPoints.Times, fromSlices.Times)
	assert.Int64SliceEqual(t, fromPoints.Values, fromSlices.Values)

	roundTripped := fromSlices.PointSlice()
	assert.Equal(t, len(roundTripped), len(points))
	for i := range points {
		assert.Equal(t, roundTripped[i], points[i])
	}
}

func TestGraphPointsStopsAtShorterSlice(t *testing.T) {
	graph := &Graph{
		Times:  []int64{0, 10, 20, 30},
		Values: []int64{5, 50},
	}

	assert.Equal(t, graph.Len(), 2)

	var times []int64
	var values []int64
	for time, value := range graph.Points() {
		times = append(times, time)
		values = append(values, value)
	}
	assert.Int64SliceEqual(t, times, []int64{0, 10})
	assert.Int64SliceEqual(t, values, []int64{5, 50})
}

func TestGraphPointsRestartable(t *testing.T) {
	graph := NewGraphFromPoints([]Point{{0, 1}, {10, 2}, {20, 3}})

	seq := graph.Points()

	var first int
	for range seq {
		first++
	}
	var second int
	for range seq {
		second++
	}
	assert.Equal(t, first, 3)
	assert.Equal(t, second, 3)
}

func TestGraphPointsEarlyBreak(t *testing.T) {
	graph := NewGraphFromPoints([]Point{{0, 1}, {10, 2}, {20, 3}})

	var seen int
	for time := range graph.Points() {
		seen++
		if time == 10 {
			break
		}
	}
	assert.Equal(t, seen, 2)
}

func TestEmptyGraph(t *testing.T) {
	graph, err := NewGraph(nil, nil)
	assert.NilError(t, err)
	assert.Equal(t, graph.Len(), 0)
	assert.Equal(t, len(graph.PointSlice()), 0)
}
