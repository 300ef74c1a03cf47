package config

type (
	// HeadersNumber is responsible for the amount of header fields.
	// Default value is the initial capacity of the headers storage.
	// Maximal value is the number of fields allowed to be present.
	HeadersNumber struct {
		Default, Maximal int
	}

	// Space is a pair of an initial and a hard-limit size of a bounded
	// byte buffer.
	Space struct {
		Default, Maximal int
	}
)

type (
	RequestLine struct {
		// Size bounds the whole request line: method, target and protocol
		// share a single buffer, so the real target limit is slightly lower
		// than the maximal value.
		Size Space
	}

	Headers struct {
		Number HeadersNumber
		// KeySpace limits the total amount of memory occupied by header keys.
		KeySpace Space
		// ValueSpace limits the total amount of memory occupied by header
		// values. Together with KeySpace it caps the whole header block.
		ValueSpace Space
	}

	Stream struct {
		// ReadBufferSize is the size of the buffer each stream read fills.
		// It bounds peak memory of the parse loop independently of how big
		// the header section is; it is never grown.
		ReadBufferSize int
	}
)

// Config holds the restrictions and pre-allocations used while reading
// a sub-request. Modify values returned by Default() instead of
// constructing the struct manually.
type Config struct {
	RequestLine RequestLine
	Headers     Headers
	Stream      Stream
}

// Default returns a well-balanced default config.
func Default() *Config {
	return &Config{
		RequestLine: RequestLine{
			Size: Space{
				Default: 2 * 1024,
				// most web entities limit the request line to 4-8kb, so 16kb
				// is fairly permissive
				Maximal: 16 * 1024,
			},
		},
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				Maximal: 50,
			},
			KeySpace: Space{
				Default: 512,
				Maximal: 4 * 1024,
			},
			ValueSpace: Space{
				Default: 1 * 1024,
				Maximal: 16 * 1024, // there might be extremely long cookies
			},
		},
		Stream: Stream{
			ReadBufferSize: 32 * 1024,
		},
	}
}
