// Package httpbatch reconstructs structured HTTP requests from raw
// byte streams holding individual sub-requests of a multi-request
// batch payload. The stream for each sub-request is produced by an
// external multipart splitter; this package bridges it to pipelines
// that expect a fully-formed request object.
package httpbatch

import (
	"io"

	"github.com/indigo-web/utils/buffer"
	"github.com/quentez/httpbatch/config"
	"github.com/quentez/httpbatch/http"
	"github.com/quentez/httpbatch/http/status"
	"github.com/quentez/httpbatch/internal/parser"
)

// ReadRequest reads exactly one sub-request from src: it drives the
// header parser across repeated fixed-size reads and then rebuilds a
// complete request object around the stream. A nil cfg falls back to
// config.Default().
//
// src is owned exclusively by the call until it returns; afterwards
// ownership either transfers to the returned request's Body, or, when
// the sub-request has no body, back to the caller. If entity headers
// are present, src must additionally implement io.Seeker, as the read
// loop inevitably pulls the first body bytes into its buffer and the
// stream has to be rewound to the exact body start before it is handed
// out.
//
// Failures are status errors: I/O errors wrap the underlying cause,
// syntax errors surface as a status.ParseError, an early end of stream
// as status.ErrTruncatedRequest and a body behind a non-seekable
// stream as status.ErrNonSeekableStream. None of them is retried.
func ReadRequest(src io.Reader, cfg *config.Config) (*http.Request, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	record, rewind, err := parse(src, cfg)
	if err != nil {
		return nil, err
	}

	return reconstruct(record, src, rewind)
}

// parse owns the read/parse loop. On success it reports how many
// trailing bytes of the last chunk were read past the end of the
// header section: that many bytes belong to the body and must be given
// back to the stream before the body is exposed.
func parse(src io.Reader, cfg *config.Config) (record *http.Record, rewind int, err error) {
	record = http.NewRecord(cfg.Headers.Number.Default)
	p := parser.New(
		record,
		buffer.New(cfg.RequestLine.Size.Default, cfg.RequestLine.Size.Maximal),
		buffer.New(cfg.Headers.KeySpace.Default, cfg.Headers.KeySpace.Maximal),
		buffer.New(cfg.Headers.ValueSpace.Default, cfg.Headers.ValueSpace.Maximal),
		cfg.Headers,
	)

	buff := make([]byte, cfg.Stream.ReadBufferSize)
	consumed := 0

	for {
		n, readErr := src.Read(buff)
		if readErr != nil && readErr != io.EOF {
			return nil, 0, status.WrapIO(readErr)
		}

		state, extra, parseErr := p.Parse(buff[:n])
		switch state {
		case parser.HeadersCompleted:
			return record, len(extra), nil
		case parser.Error:
			return nil, 0, status.NewParse(parseErr, consumed, buff[:n])
		}

		consumed += n

		if readErr == io.EOF {
			// the parser still wants more data, but there is none
			return nil, 0, status.ErrTruncatedRequest
		}
	}
}
