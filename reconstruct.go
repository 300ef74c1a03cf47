package httpbatch

import (
	"io"

	"github.com/indigo-web/utils/strcomp"
	"github.com/quentez/httpbatch/http"
	"github.com/quentez/httpbatch/http/status"
	"github.com/quentez/httpbatch/kv"
)

// entityHeaders are the fields describing the message content rather
// than the message itself. During reconstruction every header lands in
// exactly one bucket: these go to the body wrapper, everything else
// stays on the message.
var entityHeaders = []string{
	"Allow",
	"Content-Disposition",
	"Content-Encoding",
	"Content-Language",
	"Content-Length",
	"Content-Location",
	"Content-MD5",
	"Content-Range",
	"Content-Type",
	"Expires",
	"Last-Modified",
}

func isEntityHeader(key string) bool {
	for _, known := range entityHeaders {
		if strcomp.EqualFold(key, known) {
			return true
		}
	}

	return false
}

// reconstruct assembles the final request object from the parsed
// record and, if the sub-request has a body, repositions the stream at
// its exact first byte.
func reconstruct(record *http.Record, src io.Reader, rewind int) (*http.Request, error) {
	uri, err := synthesizeURI(record.Target)
	if err != nil {
		return nil, err
	}

	messageHeaders := kv.NewPrealloc(record.Headers.Len())
	var contentHeaders *kv.Storage

	for _, pair := range record.Headers.Unwrap() {
		if isEntityHeader(pair.Key) {
			if contentHeaders == nil {
				contentHeaders = kv.New()
			}

			contentHeaders.Add(pair.Key, pair.Value)
			continue
		}

		messageHeaders.Add(pair.Key, pair.Value)
	}

	request := &http.Request{
		Method:  record.Method,
		URI:     uri,
		Proto:   record.Proto,
		Headers: messageHeaders,
	}

	if contentHeaders == nil {
		// no entity headers means no body, so the stream isn't required
		// to be seekable. When it is, still give back the bytes the parse
		// loop over-read, leaving the cursor at the end of the headers.
		if seeker, ok := src.(io.Seeker); ok && rewind > 0 {
			if _, err = seeker.Seek(-int64(rewind), io.SeekCurrent); err != nil {
				return nil, status.WrapIO(err)
			}
		}

		return request, nil
	}

	seeker, ok := src.(io.Seeker)
	if !ok {
		return nil, status.ErrNonSeekableStream
	}

	// the parse loop read rewind bytes past the header section into its
	// buffer; give them back, otherwise they'd be lost to the body reader
	if _, err = seeker.Seek(-int64(rewind), io.SeekCurrent); err != nil {
		return nil, status.WrapIO(err)
	}

	request.Body = http.NewBody(contentHeaders, src)

	return request, nil
}
