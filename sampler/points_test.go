package sampler

import (
	"encoding/json"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBuild(t *testing.T) {
	Convey("Given the alphabet abc and a 9s video", t, func() {
		alphabet, _ := NewAlphabet("abc")
		table := Build(alphabet, 9)

		Convey("The points are spread evenly from zero", func() {
			So(table.Points(), ShouldResemble, []Point{
				{Key: "a", Time: 0},
				{Key: "b", Time: 3},
				{Key: "c", Time: 6},
			})
		})

		Convey("The table remembers the duration it spans", func() {
			So(table.Duration(), ShouldEqual, 9)
		})
	})

	Convey("Given a ten key row and a long video", t, func() {
		alphabet, _ := NewAlphabet("1234567890")
		duration := 187.3
		table := Build(alphabet, duration)

		Convey("There is one point per key", func() {
			So(table.Len(), ShouldEqual, len(alphabet))
		})

		Convey("The first point is 0 and the last stays short of the end", func() {
			first, _ := table.Get("1")
			last, _ := table.Get("0")
			So(first, ShouldEqual, 0)
			So(last, ShouldEqual, math.Floor(9.0/10.0*duration))
			So(last, ShouldBeLessThan, duration)
		})

		Convey("Points strictly increase in alphabet order", func() {
			points := table.Points()
			for i := 1; i < len(points); i++ {
				So(points[i].Time, ShouldBeGreaterThan, points[i-1].Time)
			}
		})

		Convey("Building again yields the same table", func() {
			So(Build(alphabet, duration).Points(), ShouldResemble, table.Points())
		})
	})

	Convey("Given an empty alphabet", t, func() {
		table := Build(Alphabet{}, 120)

		Convey("The table is empty", func() {
			So(table.Len(), ShouldEqual, 0)
			So(table.Points(), ShouldBeEmpty)
		})
	})
}

func TestTable(t *testing.T) {
	Convey("Given a built table", t, func() {
		table := Build(Alphabet{"a", "b"}, 10)

		Convey("Set retimes an existing key", func() {
			So(table.Set("b", 7.5), ShouldBeTrue)
			v, _ := table.Get("b")
			So(v, ShouldEqual, 7.5)
		})

		Convey("Set cannot invent keys", func() {
			So(table.Set("z", 1), ShouldBeFalse)
			So(table.Has("z"), ShouldBeFalse)
			So(table.Len(), ShouldEqual, 2)
		})
	})

	Convey("A nil table is empty", t, func() {
		var table *Table
		So(table.Len(), ShouldEqual, 0)
		So(table.Has("a"), ShouldBeFalse)
		So(table.Set("a", 1), ShouldBeFalse)
		So(table.Points(), ShouldBeNil)
		So(table.Duration(), ShouldEqual, 0)
	})
}

func TestTableJSON(t *testing.T) {
	Convey("A table encodes as an object in alphabet order", t, func() {
		alphabet, _ := NewAlphabet("cab")
		data, err := json.Marshal(Build(alphabet, 9))
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, `{"c":0,"a":3,"b":6}`)
	})

	Convey("A nil table encodes as an empty object", t, func() {
		var table *Table
		data, err := table.MarshalJSON()
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, "{}")
	})
}
