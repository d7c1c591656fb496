// Package extract drives catalog extraction: it normalizes raw panel items
// against fixed per-type schemas and orchestrates the per-cell pipeline.
package extract

import (
	"github.com/samber/mo"
	"github.com/xtrex-cli/xtrex/xtream"
)

// Outcome reports the result of one (provider, content type) extraction cell.
// Partial success across a run is the expected steady state: failed cells
// carry an error and no path, successful cells carry a path and a row count.
type Outcome struct {
	Provider string
	Type     xtream.ContentType

	// Rows is the number of data rows exported. Zero with a present Path
	// means the panel genuinely returned an empty catalog.
	Rows int

	// Path is the written file, absent when the cell failed.
	Path mo.Option[string]

	Err error
}

// Failed reports whether the cell produced an error instead of a file.
func (o Outcome) Failed() bool {
	return o.Err != nil
}
