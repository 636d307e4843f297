// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strings"
)

// Size is a named node count.
type Size int

// The three sizes offered to users.
const (
	Small  Size = 10
	Medium Size = 25
	Large  Size = 50
)

// Sizes lists the named sizes in ascending order.
func Sizes() []Size { return []Size{Small, Medium, Large} }

// String implements fmt.Stringer.
func (s Size) String() string {
	switch s {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	default:
		return fmt.Sprintf("Size(%d)", int(s))
	}
}

// ParseSize maps "small", "Medium", "LARGE" etc. to a Size.
func ParseSize(s string) (Size, error) {
	for _, sz := range Sizes() {
		if strings.EqualFold(strings.TrimSpace(s), sz.String()) {
			return sz, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSize, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(b []byte) error {
	v, err := ParseSize(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}
