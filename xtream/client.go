// Package xtream implements a client for Xtream-Codes-compatible IPTV panel APIs.
//
// Panels expose a single player_api.php endpoint with query-string
// authentication and an "action" selector; every response is a JSON document
// whose exact shape is panel/version-dependent and must be decoded defensively.
package xtream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/xtrex-cli/xtrex/constant"
	"github.com/xtrex-cli/xtrex/log"
	"github.com/xtrex-cli/xtrex/network"
)

// Client issues authenticated requests against one panel account.
// It is stateless and safe for concurrent use.
type Client struct {
	name     string
	baseURL  string
	username string
	password string
	http     *http.Client
}

// New constructs a Client for the named panel account. A nil httpClient
// falls back to the shared tuned network client.
func New(name, baseURL, username, password string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = network.Client
	}
	return &Client{
		name:     name,
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		http:     httpClient,
	}
}

// Name returns the configured display name of the panel account.
func (c *Client) Name() string {
	return c.name
}

// Categories fetches the category listing for the given catalog and builds the
// identifier-to-name lookup. Duplicate identifiers resolve last-write-wins.
func (c *Client) Categories(ctx context.Context, ct ContentType) (CategoryMap, error) {
	action := ct.categoriesAction()
	body, err := c.call(ctx, action, nil)
	if err != nil {
		return nil, err
	}
	if nullBody(body) {
		return nil, &DecodeError{Provider: c.name, Action: action, Err: errNullResponse}
	}

	var entries []category
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &DecodeError{Provider: c.name, Action: action, Err: err}
	}

	categories := make(CategoryMap, len(entries))
	for _, entry := range entries {
		categories[entry.CategoryID.String()] = entry.CategoryName
	}

	log.Debugf("%s: resolved %d %s categories", c.name, len(categories), ct)
	return categories, nil
}

// Items fetches the raw item listing for the given catalog. An empty slice is
// a valid outcome and distinct from an error.
func (c *Client) Items(ctx context.Context, ct ContentType) ([]RawItem, error) {
	action := ct.itemsAction()
	body, err := c.call(ctx, action, nil)
	if err != nil {
		return nil, err
	}
	if nullBody(body) {
		return nil, &DecodeError{Provider: c.name, Action: action, Err: errNullResponse}
	}

	// UseNumber keeps numeric identifiers verbatim instead of forcing them
	// through float64 and back.
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var items []RawItem
	if err := decoder.Decode(&items); err != nil {
		return nil, &DecodeError{Provider: c.name, Action: action, Err: err}
	}

	log.Debugf("%s: fetched %d %s items", c.name, len(items), ct)
	return items, nil
}

// Account fetches the account and server status via get_user_info.
func (c *Client) Account(ctx context.Context) (*Account, error) {
	const action = "get_user_info"
	body, err := c.call(ctx, action, nil)
	if err != nil {
		return nil, err
	}

	var account Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, &DecodeError{Provider: c.name, Action: action, Err: err}
	}

	return &account, nil
}

// Playlist retrieves the raw M3U playlist for the account. kind is the
// playlist type (e.g. "m3u_plus") and output the container format (e.g. "ts").
func (c *Client) Playlist(ctx context.Context, kind, output string) (string, error) {
	query := url.Values{}
	query.Set("username", c.username)
	query.Set("password", c.password)
	query.Set("type", kind)
	query.Set("output", output)

	body, err := c.get(ctx, c.baseURL+"/playlist.php?"+query.Encode(), "playlist")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

var errNullResponse = errors.New("panel returned null instead of a listing")

// nullBody reports whether the response is the literal JSON null some panels
// serve in place of an empty array. Decoding null into a slice silently
// yields nil, so it must be rejected before it can pass for an empty catalog.
func nullBody(body []byte) bool {
	return string(bytes.TrimSpace(body)) == "null"
}

// call performs one authenticated player_api request and returns the raw body.
func (c *Client) call(ctx context.Context, action string, params url.Values) ([]byte, error) {
	query := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	query.Set("username", c.username)
	query.Set("password", c.password)
	query.Set("action", action)

	return c.get(ctx, c.baseURL+"/player_api.php?"+query.Encode(), action)
}

func (c *Client) get(ctx context.Context, rawURL, action string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &RequestError{Provider: c.name, Action: action, Err: err}
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Provider: c.name, Action: action, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Provider: c.name, Action: action, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Provider: c.name, Action: action, Err: fmt.Errorf("read body: %w", err)}
	}

	return body, nil
}
