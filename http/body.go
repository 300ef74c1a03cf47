package http

import (
	"io"
	"strings"

	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
	"github.com/quentez/httpbatch/http/status"
)

// Body is a sub-request's body: the source stream positioned at the
// exact first body byte, paired with the content headers that describe
// it. The body spans the rest of the stream. Body takes ownership of
// the stream; nothing else may read from or seek on it.
type Body struct {
	// Headers holds the entity headers routed away from the message.
	Headers Headers
	src     io.Reader
	buff    []byte
	read    bool
}

func NewBody(headers Headers, src io.Reader) *Body {
	return &Body{
		Headers: headers,
		src:     src,
	}
}

// Read implements the io.Reader interface over the remaining stream.
func (b *Body) Read(p []byte) (n int, err error) {
	return b.src.Read(p)
}

// Bytes returns the whole body at once. The result is computed once
// and cached, so repeated calls are cheap.
func (b *Body) Bytes() ([]byte, error) {
	if !b.read {
		buff, err := io.ReadAll(b.src)
		if err != nil {
			return nil, err
		}

		b.buff, b.read = buff, true
	}

	return b.buff, nil
}

// String returns the whole body at once in a string representation.
func (b *Body) String() (string, error) {
	bytes, err := b.Bytes()
	return uf.B2S(bytes), err
}

// JSON conveys the body to a json unmarshaller and behaves in a
// similar manner.
//
// Please note: this method cannot be used on bodies whose Content-Type
// is incompatible with application/json (in this case,
// status.ErrUnsupportedMediaType is returned).
func (b *Body) JSON(model any) error {
	if !isJSON(b.Headers.Value("Content-Type")) {
		return status.ErrUnsupportedMediaType
	}

	data, err := b.Bytes()
	if err != nil {
		return err
	}

	iterator := json.ConfigDefault.BorrowIterator(data)
	iterator.ReadVal(model)
	err = iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}

// Discard reads the rest of the body (if any) into nowhere. If no
// stream error was encountered, nil is returned.
func (b *Body) Discard() error {
	_, err := io.Copy(io.Discard, b.src)
	return err
}

func isJSON(contentType string) bool {
	// media type parameters, e.g. a charset, don't affect compatibility
	if semicolon := strings.IndexByte(contentType, ';'); semicolon != -1 {
		contentType = contentType[:semicolon]
	}

	return strcomp.EqualFold(strings.TrimSpace(contentType), "application/json")
}
