// Package extract drives catalog extraction: it normalizes raw panel items
// against fixed per-type schemas and orchestrates the per-cell pipeline.
package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/xtrex-cli/xtrex/log"
	"github.com/xtrex-cli/xtrex/xtream"
)

// Record is one normalized catalog row. Its key set is always exactly the
// canonical field list of the content type it was normalized for.
type Record map[string]string

// Row projects the record onto the given ordered column list.
func (r Record) Row(fieldnames []string) []string {
	row := make([]string, len(fieldnames))
	for i, name := range fieldnames {
		row[i] = r[name]
	}
	return row
}

// Normalize flattens raw panel items into fixed-schema records, in input order.
// Canonical fields absent from an item become empty values; fields outside the
// schema are dropped. Category identifiers are resolved through categories with
// an empty name on miss, never an error.
func Normalize(items []xtream.RawItem, categories xtream.CategoryMap, ct xtream.ContentType) []Record {
	schema := fieldnames[ct]
	records := make([]Record, 0, len(items))

	for _, item := range items {
		record := make(Record, len(schema))
		for _, field := range schema {
			switch field {
			case "category_name":
				record[field] = categories[stringify(item["category_id"])]
			case "added":
				record[field] = isoAdded(item)
			default:
				record[field] = stringify(item[field])
			}
		}
		records = append(records, record)
	}

	return records
}

// isoAdded converts the panel's unix-seconds "added" field to RFC 3339 UTC.
// Values that do not parse as an integer are passed through verbatim.
func isoAdded(item xtream.RawItem) string {
	raw := stringify(item["added"])
	if raw == "" {
		return ""
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Warnf("could not convert 'added' field for item: %s", stringify(item["name"]))
		return raw
	}

	return time.Unix(seconds, 0).UTC().Format(time.RFC3339)
}

// stringify coerces a loosely-typed JSON value to its export text form.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
