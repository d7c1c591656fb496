package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/xtrex-cli/xtrex/config"
	"github.com/xtrex-cli/xtrex/filesystem"
	"github.com/xtrex-cli/xtrex/xtream"
)

// fakeCatalog serves canned panel responses per content type.
type fakeCatalog struct {
	items         map[xtream.ContentType][]xtream.RawItem
	categories    map[xtream.ContentType]xtream.CategoryMap
	itemsErr      map[xtream.ContentType]error
	categoriesErr map[xtream.ContentType]error
}

func (f *fakeCatalog) Items(_ context.Context, ct xtream.ContentType) ([]xtream.RawItem, error) {
	if err := f.itemsErr[ct]; err != nil {
		return nil, err
	}
	return f.items[ct], nil
}

func (f *fakeCatalog) Categories(_ context.Context, ct xtream.ContentType) (xtream.CategoryMap, error) {
	if err := f.categoriesErr[ct]; err != nil {
		return nil, err
	}
	return f.categories[ct], nil
}

func demoCatalog() *fakeCatalog {
	return &fakeCatalog{
		items: map[xtream.ContentType][]xtream.RawItem{
			xtream.Live: {
				{"stream_id": 5, "name": "News 1", "category_id": "2"},
			},
		},
		categories: map[xtream.ContentType]xtream.CategoryMap{
			xtream.Live: {"2": "News"},
		},
	}
}

func options(catalogs map[string]*fakeCatalog, providers []config.Provider, types ...xtream.ContentType) *Options {
	return &Options{
		Providers: providers,
		Dir:       "/out",
		Types:     types,
		Stamp:     mo.Some("20250101T000000Z"),
		Open: func(p config.Provider) Catalog {
			return catalogs[p.Name]
		},
	}
}

func readFile(path string) string {
	data, err := filesystem.API().ReadFile(path)
	So(err, ShouldBeNil)
	return string(data)
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		ctx := context.Background()
		demo := config.Provider{Name: "Demo", URL: "http://panel", Username: "u", Password: "p"}

		Convey("Should export a resolved, normalized catalog", func() {
			opts := options(map[string]*fakeCatalog{"Demo": demoCatalog()}, []config.Provider{demo}, xtream.Live)
			outcomes := Run(ctx, opts)

			So(outcomes, ShouldHaveLength, 1)
			So(outcomes[0].Failed(), ShouldBeFalse)
			So(outcomes[0].Rows, ShouldEqual, 1)
			So(outcomes[0].Path.MustGet(), ShouldEqual, "/out/Demo_live_streams_20250101T000000Z.csv")

			content := readFile(outcomes[0].Path.MustGet())
			So(content, ShouldEqual,
				"category_name,name,num,stream_icon,epg_channel_id,is_adult\n"+
					"News,News 1,,,,\n")
		})

		Convey("Should produce a header-only file for an empty catalog", func() {
			catalog := &fakeCatalog{
				items:      map[xtream.ContentType][]xtream.RawItem{xtream.Series: {}},
				categories: map[xtream.ContentType]xtream.CategoryMap{xtream.Series: {}},
			}
			opts := options(map[string]*fakeCatalog{"Demo": catalog}, []config.Provider{demo}, xtream.Series)
			outcomes := Run(ctx, opts)

			So(outcomes[0].Failed(), ShouldBeFalse)
			So(outcomes[0].Rows, ShouldEqual, 0)
			content := readFile(outcomes[0].Path.MustGet())
			So(content, ShouldEqual, "category_name,name,series_id,rating,cast,director,genre,plot,cover\n")
		})

		Convey("Should skip file creation when the fetch itself fails", func() {
			catalog := demoCatalog()
			catalog.itemsErr = map[xtream.ContentType]error{
				xtream.VOD: &xtream.RequestError{Provider: "X", Action: "get_vod_streams", Status: 503},
			}
			x := config.Provider{Name: "X", URL: "http://panel", Username: "u", Password: "p"}
			opts := options(map[string]*fakeCatalog{"X": catalog}, []config.Provider{x}, xtream.VOD)
			outcomes := Run(ctx, opts)

			So(outcomes[0].Failed(), ShouldBeTrue)
			So(outcomes[0].Provider, ShouldEqual, "X")
			So(outcomes[0].Type, ShouldEqual, xtream.VOD)
			So(outcomes[0].Path.IsAbsent(), ShouldBeTrue)

			var reqErr *xtream.RequestError
			So(errors.As(outcomes[0].Err, &reqErr), ShouldBeTrue)

			exists, err := filesystem.API().Exists("/out/X_vod_streams_20250101T000000Z.csv")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("Should degrade to empty category names when resolution fails", func() {
			catalog := demoCatalog()
			catalog.categoriesErr = map[xtream.ContentType]error{
				xtream.Live: &xtream.DecodeError{Provider: "Demo", Action: "get_live_categories"},
			}
			opts := options(map[string]*fakeCatalog{"Demo": catalog}, []config.Provider{demo}, xtream.Live)
			outcomes := Run(ctx, opts)

			So(outcomes[0].Failed(), ShouldBeFalse)
			content := readFile(outcomes[0].Path.MustGet())
			So(content, ShouldEqual,
				"category_name,name,num,stream_icon,epg_channel_id,is_adult\n"+
					",News 1,,,,\n")
		})

		Convey("Should isolate cell failures from sibling cells", func() {
			broken := demoCatalog()
			broken.itemsErr = map[xtream.ContentType]error{
				xtream.Live: &xtream.RequestError{Provider: "A", Action: "get_live_streams"},
			}
			healthy := demoCatalog()

			a := config.Provider{Name: "A", URL: "http://a", Username: "u", Password: "p"}
			b := config.Provider{Name: "B", URL: "http://b", Username: "u", Password: "p"}
			opts := options(map[string]*fakeCatalog{"A": broken, "B": healthy}, []config.Provider{a, b}, xtream.Live, xtream.Series)
			outcomes := Run(ctx, opts)

			So(outcomes, ShouldHaveLength, 4)
			failed := 0
			for _, outcome := range outcomes {
				if outcome.Failed() {
					failed++
					So(outcome.Provider, ShouldEqual, "A")
					So(outcome.Type, ShouldEqual, xtream.Live)
				} else {
					So(outcome.Path.IsPresent(), ShouldBeTrue)
				}
			}
			So(failed, ShouldEqual, 1)
		})

		Convey("Should report outcomes in provider then content-type order even when concurrent", func() {
			a := config.Provider{Name: "A", URL: "http://a", Username: "u", Password: "p"}
			b := config.Provider{Name: "B", URL: "http://b", Username: "u", Password: "p"}
			opts := options(map[string]*fakeCatalog{"A": demoCatalog(), "B": demoCatalog()}, []config.Provider{a, b}, xtream.Live, xtream.VOD)
			opts.Concurrent = true
			outcomes := Run(ctx, opts)

			So(outcomes, ShouldHaveLength, 4)
			So(outcomes[0].Provider, ShouldEqual, "A")
			So(outcomes[0].Type, ShouldEqual, xtream.Live)
			So(outcomes[1].Type, ShouldEqual, xtream.VOD)
			So(outcomes[2].Provider, ShouldEqual, "B")
		})

		Convey("Should produce identical data rows across runs", func() {
			catalogs := map[string]*fakeCatalog{"Demo": demoCatalog()}

			first := Run(ctx, options(catalogs, []config.Provider{demo}, xtream.Live))
			firstContent := readFile(first[0].Path.MustGet())

			second := Run(ctx, options(catalogs, []config.Provider{demo}, xtream.Live))
			secondContent := readFile(second[0].Path.MustGet())

			So(secondContent, ShouldEqual, firstContent)
		})

		Convey("Should sanitize provider names in file names", func() {
			odd := config.Provider{Name: "My Panel: EU", URL: "http://panel", Username: "u", Password: "p"}
			opts := options(map[string]*fakeCatalog{"My Panel: EU": demoCatalog()}, []config.Provider{odd}, xtream.Live)
			outcomes := Run(ctx, opts)

			So(outcomes[0].Path.MustGet(), ShouldEqual, "/out/My_Panel_EU_live_streams_20250101T000000Z.csv")
		})
	})
}
