package tokenizer

import (
	"errors"
	"os"
)

var errNilCounter = errors.New("nil tokenizer counter")

// CountText estimates the tokens in text. Control bytes such as NUL are counted like any other character.
func CountText(counter Counter, text string) (int, error) {
	if counter == nil {
		return 0, errNilCounter
	}
	return counter.CountString(text)
}

// CountFile reads the report at path and estimates its token count.
//
// #nosec G304
func CountFile(counter Counter, path string) (int, error) {
	if counter == nil {
		return 0, errNilCounter
	}
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return 0, readErr
	}
	return CountText(counter, string(data))
}
