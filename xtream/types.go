// Package xtream implements a client for Xtream-Codes-compatible IPTV panel APIs.
package xtream

import "encoding/json"

// RawItem is one loosely-typed catalog entry exactly as the panel returned it.
// Field sets vary across panels, panel versions, and content types; downstream
// normalization decides which fields survive into the export schema.
type RawItem = map[string]any

// CategoryMap resolves a panel-defined category identifier to its display name.
type CategoryMap = map[string]string

// FlexID is an identifier that panels serialize inconsistently as either a
// JSON string or a JSON number. It always decodes to its string form.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string {
	return string(f)
}

// category is the expected shape of one entry in a category-listing response.
// Unexpected extra fields are ignored by the decoder.
type category struct {
	CategoryID   FlexID `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// UserInfo is the account and server status returned by get_user_info.
type UserInfo struct {
	Username       string `json:"username"`
	Status         string `json:"status"`
	ExpDate        FlexID `json:"exp_date"`
	IsTrial        FlexID `json:"is_trial"`
	ActiveCons     FlexID `json:"active_cons"`
	MaxConnections FlexID `json:"max_connections"`
}

// ServerInfo describes the panel server as reported by get_user_info.
type ServerInfo struct {
	URL          string `json:"url"`
	Port         FlexID `json:"port"`
	HTTPSPort    FlexID `json:"https_port"`
	Protocol     string `json:"server_protocol"`
	TimezoneName string `json:"timezone"`
	TimestampNow FlexID `json:"timestamp_now"`
}

// Account bundles the two halves of a get_user_info response.
type Account struct {
	UserInfo   UserInfo   `json:"user_info"`
	ServerInfo ServerInfo `json:"server_info"`
}
