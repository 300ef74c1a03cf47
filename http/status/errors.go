package status

import "fmt"

// Kind is the failure category of an Error. Reading a sub-request
// fails in exactly one of these ways; none of them is retried.
type Kind uint8

const (
	// IO means a physical read (or seek) on the stream failed.
	IO Kind = iota + 1
	// MalformedRequest means the header section is syntactically broken.
	MalformedRequest
	// TruncatedRequest means the stream ended before the header section did.
	TruncatedRequest
	// NonSeekableStream means content headers were found, but the stream
	// cannot be repositioned to the body start.
	NonSeekableStream
	// UnsupportedMediaType means a body accessor was used on an
	// incompatible content type.
	UnsupportedMediaType
)

// Error is a plain value error tagged with a Kind. Two errors match
// via errors.Is whenever their kinds are equal, so the sentinel values
// below serve as match targets for whole categories.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func New(kind Kind, message string) Error {
	return Error{Kind: kind, Message: message}
}

func (e Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e Error) Unwrap() error { return e.Cause }

func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrIO                   = New(IO, "stream read failed")
	ErrMalformedRequest     = New(MalformedRequest, "malformed request")
	ErrBadRequest           = New(MalformedRequest, "bad request")
	ErrTooLongRequestLine   = New(MalformedRequest, "request line is too long")
	ErrHeaderFieldsTooLarge = New(MalformedRequest, "too large header section")
	ErrTooManyHeaders       = New(MalformedRequest, "too many headers")
	ErrUnsupportedProtocol  = New(MalformedRequest, "protocol is not supported")
	ErrTruncatedRequest     = New(TruncatedRequest, "stream ended before the header section completed")
	ErrNonSeekableStream    = New(NonSeekableStream, "cannot rewind the stream to the body start")
	ErrUnsupportedMediaType = New(UnsupportedMediaType, "unsupported media type")
)

// WrapIO attaches the underlying cause of a failed stream operation.
func WrapIO(cause error) Error {
	return Error{Kind: IO, Message: "stream read failed", Cause: cause}
}

// ParseError is a malformed-request failure annotated with
// diagnostics: the number of header bytes fed to the parser before the
// failing chunk, and the chunk itself.
type ParseError struct {
	BytesConsumed int
	Segment       []byte
	Cause         error
}

func NewParse(cause error, consumed int, segment []byte) ParseError {
	return ParseError{
		BytesConsumed: consumed,
		Segment:       segment,
		Cause:         cause,
	}
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s (after %d header bytes)", e.Cause, e.BytesConsumed)
}

func (e ParseError) Unwrap() error { return e.Cause }

func (e ParseError) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Kind == MalformedRequest
}
