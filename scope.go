package docslice

import (
	"net/url"
	"strings"
)

// Scope describes the portion of a site a URL must belong to: a set of
// allowed hosts (subdomains included) and a path prefix such as
// "/blog" or "/docs".
type Scope struct {
	Hosts      []string
	PathPrefix string
}

// Contains reports whether rawURL falls inside the scope. The host
// must equal or be a subdomain of an allowed host, and the path must
// equal the prefix or extend it at a path boundary (so "/docs" admits
// "/docs" and "/docs/intro" but not "/documentation"). Malformed URLs
// are out of scope rather than an error.
func (s Scope) Contains(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	allowed := false
	for _, h := range s.Hosts {
		h = strings.ToLower(h)
		if host == h || strings.HasSuffix(host, "."+h) {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}

	return matchesPathPrefix(u.Path, s.PathPrefix)
}

// matchesPathPrefix checks if a path starts with the given prefix,
// respecting path boundaries.
func matchesPathPrefix(path, prefix string) bool {
	if prefix == "" || prefix == "/" {
		return true
	}
	prefix = strings.TrimSuffix(prefix, "/")
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}
