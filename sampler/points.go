package sampler

import (
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Point is a seek point as shown on a pad.
type Point struct {
	Key  string  `json:"key"`
	Time float64 `json:"time"`
}

// Table maps key labels to seek times in seconds, in alphabet order.
// A nil Table is empty.
type Table struct {
	points   *orderedmap.OrderedMap[string, float64]
	duration float64
}

// Build spreads the alphabet evenly over [0, duration): the i-th of n keys lands on
// floor(i/n * duration), so the first point is 0 and the last stays short of the end.
// duration must be positive.
func Build(alphabet Alphabet, duration float64) *Table {
	t := &Table{points: orderedmap.New[string, float64](), duration: duration}
	count := float64(len(alphabet))
	for i, label := range alphabet {
		t.points.Set(label, math.Floor(float64(i)/count*duration))
	}
	return t
}

// Get returns the seek time bound to key.
func (t *Table) Get(key string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	return t.points.Get(key)
}

// Has reports whether key is bound.
func (t *Table) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Set retimes an existing key; unknown keys are left alone and false is returned.
func (t *Table) Set(key string, seconds float64) bool {
	if !t.Has(key) {
		return false
	}
	t.points.Set(key, seconds)
	return true
}

// Duration is the video length the table was built for.
func (t *Table) Duration() float64 {
	if t == nil {
		return 0
	}
	return t.duration
}

// Len returns the number of bound keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.points.Len()
}

// Points lists the seek points in alphabet order.
func (t *Table) Points() []Point {
	if t == nil {
		return nil
	}
	points := make([]Point, 0, t.points.Len())
	for pair := t.points.Oldest(); pair != nil; pair = pair.Next() {
		points = append(points, Point{Key: pair.Key, Time: pair.Value})
	}
	return points
}

// MarshalJSON encodes the table as an object keeping alphabet order.
func (t *Table) MarshalJSON() ([]byte, error) {
	if t == nil || t.points == nil {
		return []byte("{}"), nil
	}
	return t.points.MarshalJSON()
}
