package internal

import (
	"net/url"
	"path"

	"github.com/cockroachdb/errors"
)

// ResolveUrl builds an absolute URL out of a base, which may be relative,
// and path elements appended to it.
//
// Relative bases ("/api", "./mocks") are resolved against origin the same
// way a browser resolves them against the page it was loaded from.
//
// Elements are taken literally: characters such as '%', '?' or '#' are part
// of the path and get escaped in the returned URL.
func ResolveUrl(origin, base string, elems ...string) (string, error) {
	ref, err := url.Parse(base)
	if err != nil {
		return "", errors.Wrapf(err, "invalid base URL '%s'", base)
	}

	if !ref.IsAbs() {
		o, err := url.Parse(origin)
		if err != nil {
			return "", errors.Wrapf(err, "invalid origin '%s'", origin)
		}

		if !o.IsAbs() {
			return "", errors.Newf("cannot resolve relative URL '%s' without an absolute origin", base)
		}

		ref = o.ResolveReference(ref)
	}

	ref.Path = path.Join("/", ref.Path, path.Join(elems...))
	ref.RawPath = ""

	return ref.String(), nil
}
