package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/faster-beamer/internal/core/domain"
	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
)

// Ensure Linker implements the interface.
var _ driven.OutputLinker = (*Linker)(nil)

// Linker exposes artifacts through symbolic links, falling back to hard
// links where symlinks are unavailable.
type Linker struct{}

// NewLinker creates a linker.
func NewLinker() *Linker {
	return &Linker{}
}

// Link removes output if present and links it to target.
func (l *Linker) Link(target, output string) error {
	abs, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("%w: resolve %s: %w", domain.ErrIO, target, err)
	}

	if err := l.Remove(output); err != nil {
		return err
	}

	symErr := os.Symlink(abs, output)
	if symErr == nil {
		return nil
	}
	if err := os.Link(abs, output); err != nil {
		return fmt.Errorf("%w: link output: %w", domain.ErrIO, errors.Join(symErr, err))
	}
	return nil
}

// Remove deletes output without following it when it is a link.
func (l *Linker) Remove(output string) error {
	if _, err := os.Lstat(output); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: inspect output: %w", domain.ErrIO, err)
	}
	if err := os.Remove(output); err != nil {
		return fmt.Errorf("%w: remove previous output: %w", domain.ErrIO, err)
	}
	return nil
}
