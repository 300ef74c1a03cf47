package proto

import "github.com/indigo-web/utils/uf"

// Proto is a protocol version of a sub-request. Batch payloads embed
// plain-text requests, so only textual HTTP/1.x tokens are recognized.
type Proto uint8

const (
	Unknown Proto = iota
	HTTP10
	HTTP11
)

const (
	tokenLength        = len("HTTP/x.x")
	majorVersionOffset = len("HTTP/x") - 1
	minorVersionOffset = len("HTTP/x.x") - 1
	httpScheme         = "HTTP/"
)

func FromBytes(raw []byte) Proto {
	if len(raw) != tokenLength || uf.B2S(raw[:majorVersionOffset]) != httpScheme ||
		raw[majorVersionOffset+1] != '.' {
		return Unknown
	}

	return Parse(raw[majorVersionOffset]-'0', raw[minorVersionOffset]-'0')
}

func Parse(major, minor uint8) Proto {
	switch {
	case major == 1 && minor == 0:
		return HTTP10
	case major == 1 && minor == 1:
		return HTTP11
	default:
		return Unknown
	}
}

// Version returns the major and minor version numbers. Unknown yields 0.0.
func (p Proto) Version() (major, minor uint8) {
	switch p {
	case HTTP10:
		return 1, 0
	case HTTP11:
		return 1, 1
	default:
		return 0, 0
	}
}

func (p Proto) String() string {
	switch p {
	case HTTP10:
		return "HTTP/1.0"
	case HTTP11:
		return "HTTP/1.1"
	default:
		return "unknown"
	}
}
