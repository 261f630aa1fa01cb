package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gofrs/uuid"
)

// ErrMalformedInput marks an operator token that failed type coercion. The
// failure is recoverable: the current operation is cancelled and the menu
// loop keeps running.
var ErrMalformedInput = errors.New("malformed input")

// TokenReader reads whitespace-delimited tokens from the operator and
// coerces them to the expected type, in the exact order each prompt implies.
type TokenReader struct {
	scanner *bufio.Scanner
}

func NewTokenReader(r io.Reader) *TokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	return &TokenReader{scanner: scanner}
}

// ReadWord returns the next raw token. io.EOF means the input stream ended.
func (t *TokenReader) ReadWord() (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return t.scanner.Text(), nil
}

func (t *TokenReader) ReadInt() (int, error) {
	token, err := t.ReadWord()
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: expected a whole number, got %q", ErrMalformedInput, token)
	}

	return n, nil
}

func (t *TokenReader) ReadFloat() (float64, error) {
	token, err := t.ReadWord()
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: expected a number, got %q", ErrMalformedInput, token)
	}

	return f, nil
}

func (t *TokenReader) ReadUUID() (uuid.UUID, error) {
	token, err := t.ReadWord()
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.FromString(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: expected an id, got %q", ErrMalformedInput, token)
	}

	return id, nil
}
