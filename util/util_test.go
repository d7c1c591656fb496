package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("panel:name?.txt"), ShouldEqual, "panel_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("panel__name"), ShouldEqual, "panel_name")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-panel-name-"), ShouldEqual, "panel-name")
		})
		Convey("Should keep plain provider names untouched", func() {
			So(SanitizeFilename("Demo"), ShouldEqual, "Demo")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "row", "rows"), ShouldEqual, "1 row")
		So(Quantify(2, "row", "rows"), ShouldEqual, "2 rows")
		So(Quantify(0, "row", "rows"), ShouldEqual, "0 rows")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("live"), ShouldEqual, "Live")
		So(Capitalize(""), ShouldEqual, "")
	})
}
