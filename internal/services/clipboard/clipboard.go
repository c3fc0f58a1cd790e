// Package clipboard copies finished reports to the system clipboard.
package clipboard

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a Clipboard service implementation.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// CopyFile places the content of the file at path on the clipboard through copier.
//
// #nosec G304
func CopyFile(copier Copier, path string) error {
	if copier == nil {
		return fmt.Errorf("copy %s: clipboard unavailable", path)
	}
	content, readError := os.ReadFile(path)
	if readError != nil {
		return fmt.Errorf("copy %s: %w", path, readError)
	}
	if copyError := copier.Copy(string(content)); copyError != nil {
		return fmt.Errorf("copy %s: %w", path, copyError)
	}
	return nil
}

var _ Copier = (*Service)(nil)
