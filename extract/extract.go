// Package extract drives catalog extraction: it normalizes raw panel items
// against fixed per-type schemas and orchestrates the per-cell pipeline.
package extract

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/xtrex-cli/xtrex/config"
	"github.com/xtrex-cli/xtrex/export"
	"github.com/xtrex-cli/xtrex/key"
	"github.com/xtrex-cli/xtrex/log"
	"github.com/xtrex-cli/xtrex/network"
	"github.com/xtrex-cli/xtrex/util"
	"github.com/xtrex-cli/xtrex/xtream"
)

// StampLayout is the UTC timestamp format embedded in export file names.
const StampLayout = "20060102T150405Z"

// Catalog is the panel surface the orchestrator consumes. *xtream.Client
// satisfies it; tests substitute fakes.
type Catalog interface {
	Categories(ctx context.Context, ct xtream.ContentType) (xtream.CategoryMap, error)
	Items(ctx context.Context, ct xtream.ContentType) ([]xtream.RawItem, error)
}

// Options configures one extraction run.
type Options struct {
	Providers []config.Provider

	// Dir is the destination directory for exported files. Defaults to ".".
	Dir string

	// Types is the set of catalogs to extract. Defaults to all three.
	Types []xtream.ContentType

	// Concurrent extracts all cells in parallel; cells share no state, so
	// the only reason to disable this is gentler load on slow panels.
	Concurrent bool

	// Stamp overrides the UTC timestamp used in file names. One stamp is
	// shared by every file of a run.
	Stamp mo.Option[string]

	// Open builds the panel client for a provider. Defaults to an
	// xtream.Client using the configured network timeout.
	Open func(config.Provider) Catalog
}

func (o *Options) fill() {
	if o.Dir == "" {
		o.Dir = "."
	}
	if len(o.Types) == 0 {
		o.Types = xtream.AllContentTypes()
	}
	if o.Open == nil {
		timeout := time.Duration(viper.GetInt(key.NetworkTimeoutSeconds)) * time.Second
		o.Open = func(p config.Provider) Catalog {
			return xtream.New(p.Name, p.URL, p.Username, p.Password, network.WithTimeout(timeout))
		}
	}
}

// cell is one independent (provider, content type) unit of extraction work.
type cell struct {
	catalog  Catalog
	provider string
	ct       xtream.ContentType
}

// Run extracts every configured (provider, content type) cell and reports one
// outcome per cell, in provider order then content-type order. Cell failures
// are converted into outcomes and never abort sibling cells.
func Run(ctx context.Context, options *Options) []Outcome {
	options.fill()
	stamp := options.Stamp.OrElse(time.Now().UTC().Format(StampLayout))

	var cells []cell
	for _, p := range options.Providers {
		log.Infof("processing provider: %s", p.Name)
		catalog := options.Open(p)
		for _, ct := range options.Types {
			cells = append(cells, cell{catalog: catalog, provider: p.Name, ct: ct})
		}
	}

	outcomes := make([]Outcome, len(cells))
	if options.Concurrent {
		var wg sync.WaitGroup
		for i, c := range cells {
			wg.Add(1)
			go func(i int, c cell) {
				defer wg.Done()
				outcomes[i] = extractCell(ctx, c, options.Dir, stamp)
			}(i, c)
		}
		wg.Wait()
	} else {
		for i, c := range cells {
			outcomes[i] = extractCell(ctx, c, options.Dir, stamp)
		}
	}

	return outcomes
}

// extractCell runs one cell through fetch, category resolution, normalization
// and export. A failed fetch or export fails the cell; a failed category
// lookup degrades to empty category names.
func extractCell(ctx context.Context, c cell, dir, stamp string) Outcome {
	outcome := Outcome{Provider: c.provider, Type: c.ct}

	items, err := c.catalog.Items(ctx, c.ct)
	if err != nil {
		log.Errorf("%s: fetching %s items: %v", c.provider, c.ct, err)
		outcome.Err = err
		return outcome
	}

	categories, err := c.catalog.Categories(ctx, c.ct)
	if err != nil {
		// An unresolved category map degrades to empty names rather than
		// discarding the already fetched items.
		log.Warnf("%s: resolving %s categories: %v", c.provider, c.ct, err)
		categories = xtream.CategoryMap{}
	}

	records := Normalize(items, categories, c.ct)
	if len(records) == 0 {
		log.Warnf("%s: no %s data to save", c.provider, c.ct)
	}

	schema := Fieldnames(c.ct)
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = record.Row(schema)
	}

	filename := util.SanitizeFilename(c.provider) + "_" + c.ct.String() + "_streams_" + stamp + ".csv"
	path := filepath.Join(dir, filename)

	if err := export.Write(path, schema, rows); err != nil {
		log.Errorf("%s: saving %s data: %v", c.provider, c.ct, err)
		outcome.Err = err
		return outcome
	}

	log.Infof("%s: %s data saved to %s", c.provider, util.Capitalize(c.ct.String()), path)
	outcome.Rows = len(records)
	outcome.Path = mo.Some(path)
	return outcome
}
