package xtream

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFlexID(t *testing.T) {
	Convey("FlexID", t, func() {
		Convey("Should decode a JSON string", func() {
			var f FlexID
			So(json.Unmarshal([]byte(`"42"`), &f), ShouldBeNil)
			So(f.String(), ShouldEqual, "42")
		})

		Convey("Should decode a JSON number", func() {
			var f FlexID
			So(json.Unmarshal([]byte(`42`), &f), ShouldBeNil)
			So(f.String(), ShouldEqual, "42")
		})

		Convey("Should keep large numbers verbatim", func() {
			var f FlexID
			So(json.Unmarshal([]byte(`1735689600`), &f), ShouldBeNil)
			So(f.String(), ShouldEqual, "1735689600")
		})

		Convey("Should decode null as empty", func() {
			var f FlexID
			So(json.Unmarshal([]byte(`null`), &f), ShouldBeNil)
			So(f.String(), ShouldEqual, "")
		})

		Convey("Should reject structured values", func() {
			var f FlexID
			So(json.Unmarshal([]byte(`{"id": 1}`), &f), ShouldNotBeNil)
		})
	})
}

func TestContentType(t *testing.T) {
	Convey("ContentType", t, func() {
		Convey("Should stringify to endpoint suffixes", func() {
			So(Live.String(), ShouldEqual, "live")
			So(VOD.String(), ShouldEqual, "vod")
			So(Series.String(), ShouldEqual, "series")
		})

		Convey("Should parse from user input", func() {
			ct, err := ParseContentType("vod")
			So(err, ShouldBeNil)
			So(ct, ShouldEqual, VOD)

			_, err = ParseContentType("movies")
			So(err, ShouldNotBeNil)
		})

		Convey("Should map to the panel actions", func() {
			So(Live.itemsAction(), ShouldEqual, "get_live_streams")
			So(VOD.itemsAction(), ShouldEqual, "get_vod_streams")
			So(Series.itemsAction(), ShouldEqual, "get_series")
			So(Live.categoriesAction(), ShouldEqual, "get_live_categories")
			So(VOD.categoriesAction(), ShouldEqual, "get_vod_categories")
			So(Series.categoriesAction(), ShouldEqual, "get_series_categories")
		})

		Convey("Should enumerate all catalogs in order", func() {
			So(AllContentTypes(), ShouldResemble, []ContentType{Live, VOD, Series})
		})
	})
}
