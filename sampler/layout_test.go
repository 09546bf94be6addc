package sampler

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewAlphabet(t *testing.T) {
	Convey("NewAlphabet", t, func() {
		Convey("Splits a keyboard row into labels", func() {
			alphabet, err := NewAlphabet("qwe")
			So(err, ShouldBeNil)
			So(alphabet, ShouldResemble, Alphabet{"q", "w", "e"})
			So(alphabet.String(), ShouldEqual, "qwe")
		})

		Convey("Handles multi-byte labels", func() {
			alphabet, err := NewAlphabet("äö")
			So(err, ShouldBeNil)
			So(alphabet, ShouldHaveLength, 2)
		})

		Convey("Rejects repeated labels", func() {
			_, err := NewAlphabet("abca")
			So(errors.Is(err, ErrDuplicateKey), ShouldBeTrue)
		})

		Convey("Rejects the toggle key", func() {
			_, err := NewAlphabet("a b")
			So(errors.Is(err, ErrReservedKey), ShouldBeTrue)
		})

		Convey("Allows an empty alphabet", func() {
			alphabet, err := NewAlphabet("")
			So(err, ShouldBeNil)
			So(alphabet, ShouldBeEmpty)
		})
	})
}

func TestNewLayout(t *testing.T) {
	Convey("NewLayout", t, func() {
		Convey("Pairs names and alphabets in order", func() {
			layout, err := NewLayout([]string{"a", "b"}, []string{"123", "qwe"})
			So(err, ShouldBeNil)
			So(layout.IDs(), ShouldResemble, []SlotID{"a", "b"})

			keys, ok := layout.Keys("b")
			So(ok, ShouldBeTrue)
			So(keys.String(), ShouldEqual, "qwe")
			So(layout.Has("c"), ShouldBeFalse)
		})

		Convey("Requires one alphabet per slot", func() {
			_, err := NewLayout([]string{"a", "b"}, []string{"123"})
			So(errors.Is(err, ErrLayoutSize), ShouldBeTrue)
		})

		Convey("Rejects duplicate slots", func() {
			_, err := NewLayout([]string{"a", "a"}, []string{"1", "2"})
			So(errors.Is(err, ErrDuplicateSlot), ShouldBeTrue)
		})

		Convey("Surfaces alphabet errors", func() {
			_, err := NewLayout([]string{"a"}, []string{"11"})
			So(errors.Is(err, ErrDuplicateKey), ShouldBeTrue)
		})

		Convey("Reports keys shared between slots", func() {
			layout, err := NewLayout([]string{"a", "b", "c"}, []string{"12x", "qwx", "as1"})
			So(err, ShouldBeNil)
			So(layout.Overlaps(), ShouldResemble, map[string][]SlotID{
				"x": {"a", "b"},
				"1": {"a", "c"},
			})
		})

		Convey("Disjoint rows do not overlap", func() {
			layout, _ := NewLayout([]string{"a", "b"}, []string{"1234567890", "qwertyuiop"})
			So(layout.Overlaps(), ShouldBeEmpty)
		})
	})
}
