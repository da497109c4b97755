package registration

import (
	"strings"

	"github.com/google/uuid"
)

// NumberSource issues the unique token appended to the registration prefix.
type NumberSource interface {
	Next() (string, error)
}

// NumberSourceFunc adapts a function to NumberSource.
type NumberSourceFunc func() (string, error)

func (f NumberSourceFunc) Next() (string, error) { return f() }

// UUIDNumbers issues tokens from time-ordered UUIDv7s: the first 48 bits are
// the submission time in milliseconds, so numbers sort by submission order.
type UUIDNumbers struct{}

func (UUIDNumbers) Next() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	hex := strings.ReplaceAll(id.String(), "-", "")
	return strings.ToUpper(hex[:16]), nil
}
