package viewmodel

import (
	"net/url"
	"strconv"
)

// DefaultPageSize is how many players one page request asks for.
const DefaultPageSize = 50

// Query parameter names understood by the players listing endpoint.
const (
	ParamPage     = "page"
	ParamLimit    = "limit"
	ParamSearch   = "search"
	ParamTeam     = "team"
	ParamPosition = "position"
)

// QueryParams builds the players listing request for the given state.
// Sort settings are never sent: ordering happens locally on the fetched page.
func QueryParams(state ViewState, pageSize int) url.Values {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page := state.Page
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set(ParamPage, strconv.Itoa(page))
	q.Set(ParamLimit, strconv.Itoa(pageSize))
	setIfPresent(q, ParamSearch, state.Search)
	setIfPresent(q, ParamTeam, state.Team)
	setIfPresent(q, ParamPosition, state.Position)
	return q
}

// NeedsFetch reports whether moving from prev to next changes the request
// sent upstream.
func NeedsFetch(prev, next ViewState, pageSize int) bool {
	return QueryParams(prev, pageSize).Encode() != QueryParams(next, pageSize).Encode()
}

func setIfPresent(q url.Values, key, value string) {
	if value == "" {
		return
	}
	q.Set(key, value)
}
