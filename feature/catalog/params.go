package catalog

import "net/url"

// decodeParam undoes percent-encoding of a route parameter ("Izzet%20Charm").
func decodeParam(p string) (string, error) {
	return url.PathUnescape(p)
}
