package parser

import (
	"bytes"

	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
	"github.com/quentez/httpbatch/config"
	"github.com/quentez/httpbatch/http"
	"github.com/quentez/httpbatch/http/proto"
	"github.com/quentez/httpbatch/http/status"
)

type parserState uint8

const (
	eMethod parserState = iota + 1
	eRequestLine
	eHeaderKey
	eHeaderValue
	eHeaderValueCRLFCR
)

// Parser is an incremental header-section parser. It is fed successive
// chunks of a stream and fills the bound record as parsing progresses,
// never retroactively. It stops at the end of the header section: body
// bytes are not consumed, the unread tail of the current chunk is
// handed back as extra instead.
//
// Method, target, header keys and values are stored verbatim. The only
// judgement passed on them is syntactic: empty tokens, an unparsable
// protocol token and exceeded size limits are reported as errors.
type Parser struct {
	state         parserState
	headersNumber int
	maxHeaders    int
	record        *http.Record
	requestLine   *buffer.Buffer
	headerKeyBuff *buffer.Buffer
	headerValBuff *buffer.Buffer
	headerKey     string
}

func New(
	record *http.Record, requestLine, keyBuff, valBuff *buffer.Buffer, headers config.Headers,
) *Parser {
	return &Parser{
		state:         eMethod,
		maxHeaders:    headers.Number.Maximal,
		record:        record,
		requestLine:   requestLine,
		headerKeyBuff: keyBuff,
		headerValBuff: valBuff,
	}
}

func (p *Parser) Parse(data []byte) (state RequestState, extra []byte, err error) {
	record := p.record
	requestLine := p.requestLine
	headerKeyBuff := p.headerKeyBuff
	headerValBuff := p.headerValBuff

	switch p.state {
	case eMethod:
		goto method
	case eRequestLine:
		goto requestLine
	case eHeaderKey:
		goto headerKey
	case eHeaderValue:
		goto headerValue
	case eHeaderValueCRLFCR:
		goto headerValueCRLFCR
	default:
		panic("BUG: request parser: unknown state")
	}

method:
	{
		sp := bytes.IndexByte(data, ' ')
		if sp == -1 {
			if !requestLine.Append(data) {
				return Error, nil, status.ErrTooLongRequestLine
			}

			return Pending, nil, nil
		}

		if !requestLine.Append(data[:sp]) {
			return Error, nil, status.ErrTooLongRequestLine
		}

		methodValue := requestLine.Finish()
		if len(methodValue) == 0 {
			return Error, nil, status.ErrBadRequest
		}

		record.Method = uf.B2S(methodValue)
		data = data[sp+1:]
		p.state = eRequestLine
		goto requestLine
	}

requestLine:
	{
		lf := bytes.IndexByte(data, '\n')
		if lf == -1 {
			if !requestLine.Append(data) {
				return Error, nil, status.ErrTooLongRequestLine
			}

			return Pending, nil, nil
		}

		if !requestLine.Append(data[:lf]) {
			return Error, nil, status.ErrTooLongRequestLine
		}

		targetAndProto := requestLine.Finish()
		sp := bytes.LastIndexByte(targetAndProto, ' ')
		if sp == -1 {
			return Error, nil, status.ErrBadRequest
		}

		target, protocol := targetAndProto[:sp], targetAndProto[sp+1:]
		if len(protocol) > 0 && protocol[len(protocol)-1] == '\r' {
			protocol = protocol[:len(protocol)-1]
		}

		if len(target) == 0 {
			return Error, nil, status.ErrBadRequest
		}

		record.Target = uf.B2S(target)
		record.Proto = proto.FromBytes(protocol)
		if record.Proto == proto.Unknown {
			return Error, nil, status.ErrUnsupportedProtocol
		}

		data = data[lf+1:]
		p.state = eHeaderKey
		goto headerKey
	}

headerKey:
	{
		if len(data) == 0 {
			return Pending, nil, nil
		}

		switch data[0] {
		case '\n':
			return HeadersCompleted, data[1:], nil
		case '\r':
			data = data[1:]
			p.state = eHeaderValueCRLFCR
			goto headerValueCRLFCR
		}

		colon := bytes.IndexByte(data, ':')
		if colon == -1 {
			if !headerKeyBuff.Append(data) {
				return Error, nil, status.ErrHeaderFieldsTooLarge
			}

			return Pending, nil, nil
		}

		if !headerKeyBuff.Append(data[:colon]) {
			return Error, nil, status.ErrHeaderFieldsTooLarge
		}

		key := headerKeyBuff.Finish()
		if len(key) == 0 {
			return Error, nil, status.ErrBadRequest
		}

		p.headerKey = uf.B2S(key)
		data = data[colon+1:]

		if p.headersNumber++; p.headersNumber > p.maxHeaders {
			return Error, nil, status.ErrTooManyHeaders
		}

		p.state = eHeaderValue
		goto headerValue
	}

headerValue:
	{
		lf := bytes.IndexByte(data, '\n')
		if lf == -1 {
			if !headerValBuff.Append(data) {
				return Error, nil, status.ErrHeaderFieldsTooLarge
			}

			return Pending, nil, nil
		}

		if !headerValBuff.Append(data[:lf]) {
			return Error, nil, status.ErrHeaderFieldsTooLarge
		}

		value := trimPrefixSpaces(headerValBuff.Finish())
		if len(value) > 0 && value[len(value)-1] == '\r' {
			value = value[:len(value)-1]
		}

		record.Headers.Add(p.headerKey, uf.B2S(value))
		data = data[lf+1:]
		p.state = eHeaderKey
		goto headerKey
	}

headerValueCRLFCR:
	if len(data) == 0 {
		return Pending, nil, nil
	}

	if data[0] == '\n' {
		return HeadersCompleted, data[1:], nil
	}

	return Error, nil, status.ErrBadRequest
}

func trimPrefixSpaces(b []byte) []byte {
	for i, char := range b {
		if char != ' ' {
			return b[i:]
		}
	}

	return b[:0]
}
