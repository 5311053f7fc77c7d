package summary

import (
	"errors"
	"fmt"
	"iter"
)

var ErrLengthMismatch = errors.New("times and values must be the same length")

// Point is one sample on a score-screen graph: a game-time second and the
// measured value at that second.
type Point struct {
	Time  int64 `json:"time"`
	Value int64 `json:"value"`
}

// Graph is a score-screen time series kept as parallel slices, the layout the
// summary file uses. No ordering is imposed on the times.
type Graph struct {
	Times  []int64 `json:"times"`
	Values []int64 `json:"values"`
}

// NewGraph builds a graph from parallel time and value slices, which must be
// the same length.
func NewGraph(times, values []int64) (*Graph, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: %d times, %d values", ErrLengthMismatch, len(times), len(values))
	}
	return &Graph{Times: times, Values: values}, nil
}

// NewGraphFromPoints unzips a point list into the parallel layout.
func NewGraphFromPoints(points []Point) *Graph {
	graph := &Graph{
		Times:  make([]int64, 0, len(points)),
		Values: make([]int64, 0, len(points)),
	}
	for _, point := range points {
		graph.Times = append(graph.Times, point.Time)
		graph.Values = append(graph.Values, point.Value)
	}
	return graph
}

// Len is the number of complete points. Should the slices ever disagree in
// length, the shorter one wins.
func (g *Graph) Len() int {
	return min(len(g.Times), len(g.Values))
}

// Points zips the parallel slices back into (time, value) pairs. The sequence
// is restartable and never allocates the pair list.
func (g *Graph) Points() iter.Seq2[int64, int64] {
	return func(yield func(int64, int64) bool) {
		for i := range g.Len() {
			if !yield(g.Times[i], g.Values[i]) {
				return
			}
		}
	}
}

// PointSlice collects the zipped pairs, for callers that need them
// materialized.
func (g *Graph) PointSlice() []Point {
	points := make([]Point, 0, g.Len())
	for time, value := range g.Points() {
		points = append(points, Point{Time: time, Value: value})
	}
	return points
}
