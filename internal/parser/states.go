package parser

// RequestState is the per-call outcome of feeding a chunk to the parser.
type RequestState uint8

const (
	// Pending means the header section is incomplete and more data is wanted.
	Pending RequestState = iota + 1
	// HeadersCompleted means the header section is fully parsed. Whatever
	// tail of the chunk wasn't consumed is returned as extra and belongs
	// to the body, not to the headers.
	HeadersCompleted
	// Error means the input is malformed beyond recovery. No more chunks
	// may be fed after it is reported.
	Error
)
