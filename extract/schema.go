// Package extract drives catalog extraction: it normalizes raw panel items
// against fixed per-type schemas and orchestrates the per-cell pipeline.
package extract

import "github.com/xtrex-cli/xtrex/xtream"

// Canonical export schemas, one per content type. These column lists are the
// contract between the normalizer and the exporter: every exported file for a
// given type carries exactly these columns in exactly this order, regardless
// of which fields a particular panel happens to return.
var fieldnames = map[xtream.ContentType][]string{
	xtream.Live: {
		"category_name",
		"name",
		"num",
		"stream_icon",
		"epg_channel_id",
		"is_adult",
	},
	xtream.VOD: {
		"category_name",
		"name",
		"stream_id",
		"rating",
		"added",
		"stream_icon",
	},
	xtream.Series: {
		"category_name",
		"name",
		"series_id",
		"rating",
		"cast",
		"director",
		"genre",
		"plot",
		"cover",
	},
}

// Fieldnames returns the ordered canonical column list for the given content type.
// The result is a copy; callers may not mutate the schema.
func Fieldnames(ct xtream.ContentType) []string {
	schema := fieldnames[ct]
	out := make([]string, len(schema))
	copy(out, schema)
	return out
}
