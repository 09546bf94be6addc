// Package youtube extracts video identifiers from pasted links.
package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/samber/mo"
)

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ParseVideoID returns the 11-character id of a watch or short link, or a bare id.
// Anything else, including other hosts and malformed ids, yields None.
func ParseVideoID(raw string) mo.Option[string] {
	raw = strings.TrimSpace(raw)
	if idPattern.MatchString(raw) {
		return mo.Some(raw)
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return mo.None[string]()
	}

	var id string
	switch u.Hostname() {
	case "www.youtube.com", "youtube.com":
		if u.Path == "/watch" {
			id = u.Query().Get("v")
		}
	case "youtu.be":
		id = strings.TrimPrefix(u.Path, "/")
	}

	if !idPattern.MatchString(id) {
		return mo.None[string]()
	}
	return mo.Some(id)
}

// WatchURL builds the canonical watch link handed to the player.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// ShareURL builds a short link starting at seconds.
func ShareURL(id string, seconds float64) string {
	return fmt.Sprintf("https://youtu.be/%s?t=%d", id, int(seconds))
}
