package github

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// Tag is a tag name as returned by the tags API.
type Tag struct {
	Name string `json:"name"`
}

// ListTagsParams identifies a repository whose tags to list.
type ListTagsParams struct {
	Token string
	Repo  string
}

// ListTags lists the tags of a repository.
func (c *Client) ListTags(params ListTagsParams) *Call[[]Tag] {
	return &Call[[]Tag]{
		client: c,
		method: http.MethodGet,
		path:   fmt.Sprintf("/repos/%s/tags", escapePath(params.Repo)),
		token:  params.Token,
		decode: decodeJSON[[]Tag]("tag list"),
	}
}

// SortTagsDescending orders tags newest first by name. Names that parse as
// semantic versions (with or without the "v" prefix) compare as versions;
// any other pair falls back to reverse lexicographic order.
func SortTagsDescending(tags []Tag) {
	sort.Slice(tags, func(i, j int) bool {
		return tagAfter(tags[i].Name, tags[j].Name)
	})
}

func tagAfter(a, b string) bool {
	av := "v" + strings.TrimPrefix(a, "v")
	bv := "v" + strings.TrimPrefix(b, "v")
	if semver.IsValid(av) && semver.IsValid(bv) {
		return semver.Compare(av, bv) > 0
	}
	return a > b
}
