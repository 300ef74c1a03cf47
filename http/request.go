package http

import (
	"net/url"

	"github.com/quentez/httpbatch/http/proto"
	"github.com/quentez/httpbatch/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Record accumulates the pieces of a sub-request while its header
// section is being parsed. The parser owns it exclusively and fills it
// incrementally, never retroactively; once the header section
// completes, the contents are transferred into a Request and the
// record must not be touched again.
type Record struct {
	// Method is the verbatim request method token.
	Method string
	// Target is the verbatim request target: a path with an optional
	// query, carrying no scheme or authority.
	Target string
	Proto  proto.Proto
	// Headers holds every header field in arrival order. Keys and values
	// aren't validated or normalized, so they are preserved even when not
	// well-formed for a generic header container.
	Headers Headers
}

func NewRecord(headersPrealloc int) *Record {
	return &Record{Headers: kv.NewPrealloc(headersPrealloc)}
}

// Request is a single sub-request reconstructed from a batch payload.
// It is not modified after being returned.
type Request struct {
	Method string
	// URI is the synthesized absolute request URI. Its scheme and host
	// are a structural placeholder, not a network destination: route on
	// path and query only.
	URI   *url.URL
	Proto proto.Proto
	// Headers are the message-level headers. Entity headers describing
	// the body aren't here: they travel with Body.
	Headers Headers
	// Body provides access to the message body, or nil if the
	// sub-request carries none.
	Body *Body
}
