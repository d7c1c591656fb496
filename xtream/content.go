// Package xtream implements a client for Xtream-Codes-compatible IPTV panel APIs.
package xtream

import "fmt"

// ContentType identifies one of the three catalogs a panel exposes.
// It selects both the API actions to call and the canonical export schema.
type ContentType int

const (
	Live ContentType = iota
	VOD
	Series
)

// AllContentTypes lists every catalog in its canonical processing order.
func AllContentTypes() []ContentType {
	return []ContentType{Live, VOD, Series}
}

func (ct ContentType) String() string {
	switch ct {
	case Live:
		return "live"
	case VOD:
		return "vod"
	case Series:
		return "series"
	default:
		return "unknown"
	}
}

// ParseContentType converts a user-supplied name into a ContentType.
func ParseContentType(s string) (ContentType, error) {
	switch s {
	case "live":
		return Live, nil
	case "vod":
		return VOD, nil
	case "series":
		return Series, nil
	default:
		return 0, fmt.Errorf("unknown content type: %q", s)
	}
}

// categoriesAction returns the player_api action listing this catalog's categories.
func (ct ContentType) categoriesAction() string {
	switch ct {
	case Live:
		return "get_live_categories"
	case VOD:
		return "get_vod_categories"
	default:
		return "get_series_categories"
	}
}

// itemsAction returns the player_api action listing this catalog's items.
// Series listings use "get_series", not "get_series_streams".
func (ct ContentType) itemsAction() string {
	switch ct {
	case Live:
		return "get_live_streams"
	case VOD:
		return "get_vod_streams"
	default:
		return "get_series"
	}
}
