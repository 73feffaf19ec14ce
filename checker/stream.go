package checker

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnexpectedEOF = errors.New("Unexpected end of file - double expected")

// FormatError is returned when a token can not be read as a double.
type FormatError struct {
	Token string
}

func (e *FormatError) Error() string {
	return "Expected double, but " + strconv.Quote(e.Token) + " found"
}

// TokenStream reads whitespace delimited tokens lazily.
type TokenStream struct {
	Name string

	r *bufio.Reader
}

func NewTokenStream(name string, r io.Reader) *TokenStream {
	return &TokenStream{
		Name: name,
		r:    bufio.NewReader(r),
	}
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func (s *TokenStream) skipBlanks() error {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		if !isBlank(b) {
			return s.r.UnreadByte()
		}
	}
}

// SeekEOF skips blanks and reports whether nothing else is left.
func (s *TokenStream) SeekEOF() (bool, error) {
	err := s.skipBlanks()
	if err == io.EOF {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read "+s.Name)
	}
	return false, nil
}

// ReadToken returns the next token, or io.EOF when only blanks are left.
func (s *TokenStream) ReadToken() (string, error) {
	eof, err := s.SeekEOF()
	if err != nil {
		return "", err
	}
	if eof {
		return "", io.EOF
	}

	var sb strings.Builder
	for {
		b, err := s.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to read "+s.Name)
		}
		if isBlank(b) {
			s.r.UnreadByte()
			break
		}
		sb.WriteByte(b)
	}
	return sb.String(), nil
}

// ReadDouble reads the next token as a float64.
// It returns ErrUnexpectedEOF on an exhausted stream and *FormatError on a malformed token.
func (s *TokenStream) ReadDouble() (float64, error) {
	tok, err := s.ReadToken()
	if err == io.EOF {
		return 0, ErrUnexpectedEOF
	}
	if err != nil {
		return 0, err
	}
	return ParseDouble(tok)
}

// ParseDouble accepts decimal notation and the nan/inf spellings.
func ParseDouble(tok string) (float64, error) {
	if strings.ContainsAny(tok, "xX_") {
		return 0, &FormatError{Token: tok}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var numErr *strconv.NumError
		// out of range values still carry ±Inf
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange && math.IsInf(v, 0) {
			return v, nil
		}
		return 0, &FormatError{Token: tok}
	}
	return v, nil
}
