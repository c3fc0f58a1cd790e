package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/temirov/dirscan/internal/utils"
)

const (
	contentStartMarker   = "┌─ [content start] ──────────"
	contentEndMarker     = "└─ [content end] ──────────"
	contentLinePrefix    = "│ "
	emptyFilePlaceholder = "    (empty file)"

	// unreadableFilePlaceholderFormat replaces the content block of a file that could not be read.
	unreadableFilePlaceholderFormat = "[could not read file: %v]"

	// WarningFileReadFormat is used when a file's content cannot be read.
	WarningFileReadFormat = "Warning: failed to read file %s: %v"
	// WarningBinaryFileFormat is used when a file looks binary and is rendered as text anyway.
	WarningBinaryFileFormat = "Warning: %s looks binary; rendering it as text"
)

// inlineContent writes the text of filePath beneath its tree line, every line prefixed with childPrefix.
// Unreadable files produce a placeholder line; only sink failures are returned.
func (treeRenderer *TreeRenderer) inlineContent(filePath string, sink io.Writer, childPrefix string) error {
	content, rawSize, looksBinary, readError := readTextFile(filePath)
	if readError != nil {
		treeRenderer.summary.UnreadableFiles++
		treeRenderer.warn(WarningFileReadFormat, filePath, readError)
		return writeLine(sink, childPrefix+fmt.Sprintf(unreadableFilePlaceholderFormat, readError))
	}

	treeRenderer.summary.Files++
	treeRenderer.summary.Bytes += rawSize
	if looksBinary {
		treeRenderer.summary.BinaryFiles++
		treeRenderer.warn(WarningBinaryFileFormat, filePath)
	}

	if isBlank(content) {
		return writeLine(sink, childPrefix+emptyFilePlaceholder)
	}

	if writeError := writeLine(sink, childPrefix+contentStartMarker); writeError != nil {
		return writeError
	}
	for _, contentLine := range splitLines(content) {
		if writeError := writeLine(sink, childPrefix+contentLinePrefix+contentLine); writeError != nil {
			return writeError
		}
	}
	return writeLine(sink, childPrefix+contentEndMarker)
}

// readTextFile reads the whole file and decodes it as UTF-8, replacing invalid byte sequences with U+FFFD.
// The file handle is released before returning, including on read errors.
//
// #nosec G304
func readTextFile(filePath string) (string, int64, bool, error) {
	fileHandle, openError := os.Open(filePath)
	if openError != nil {
		return utils.EmptyString, 0, false, openError
	}
	defer fileHandle.Close()

	rawBytes, readError := io.ReadAll(fileHandle)
	if readError != nil {
		return utils.EmptyString, 0, false, readError
	}
	decodedBytes, _, decodeError := transform.Bytes(textunicode.UTF8.NewDecoder(), rawBytes)
	if decodeError != nil {
		return utils.EmptyString, 0, false, decodeError
	}
	return string(decodedBytes), int64(len(rawBytes)), utils.IsBinary(rawBytes), nil
}

// splitLines splits content on line feeds, carriage returns, vertical tabs, form feeds, the file, group and
// record separators, NEL and the Unicode line and paragraph separators, treating "\r\n" as a single boundary.
// A trailing boundary does not produce an extra empty line.
func splitLines(content string) []string {
	var lines []string
	lineStart := 0
	for byteIndex := 0; byteIndex < len(content); {
		currentRune, runeSize := utf8.DecodeRuneInString(content[byteIndex:])
		if !isLineBoundary(currentRune) {
			byteIndex += runeSize
			continue
		}
		lines = append(lines, content[lineStart:byteIndex])
		nextIndex := byteIndex + runeSize
		if currentRune == '\r' && nextIndex < len(content) && content[nextIndex] == '\n' {
			nextIndex++
		}
		byteIndex = nextIndex
		lineStart = nextIndex
	}
	if lineStart < len(content) {
		lines = append(lines, content[lineStart:])
	}
	return lines
}

// isBlank reports whether content holds nothing but whitespace, counting the file, group, record and unit
// separators as whitespace.
func isBlank(content string) bool {
	return strings.TrimFunc(content, isBlankRune) == utils.EmptyString
}

func isBlankRune(candidate rune) bool {
	if candidate >= '\x1c' && candidate <= '\x1f' {
		return true
	}
	return unicode.IsSpace(candidate)
}

func isLineBoundary(candidate rune) bool {
	switch candidate {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}
