package httpbatch

import (
	"net/url"
	"strings"

	"github.com/quentez/httpbatch/http/status"
)

// placeholderOrigin gets prepended to the path-only targets carried by
// batched sub-requests, which by convention address the same logical
// host as the outer request. The origin is purely structural, not a
// network destination: downstream consumers route on path and query.
const placeholderOrigin = "http://localhost"

func synthesizeURI(target string) (*url.URL, error) {
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}

	uri, err := url.Parse(placeholderOrigin + target)
	if err != nil {
		return nil, status.Error{
			Kind:    status.MalformedRequest,
			Message: "invalid request target",
			Cause:   err,
		}
	}

	return uri, nil
}
