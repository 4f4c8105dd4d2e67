// Package theme defines the closed set of UI themes and their per-role colors and icons.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ID identifies one of the compiled themes. The declaration order is the
// navigation order and must not change.
type ID int

const (
	Default ID = iota
	Compatible
	CatppuccinMocha
	Nord
	Gruvbox
	Solarized

	idCount
)

// Count is the number of themes.
const Count = int(idCount)

// ErrUnknownTheme is returned by Parse for names that match no theme.
var ErrUnknownTheme = errors.New("unknown theme")

var ordering = [Count]ID{Default, Compatible, CatppuccinMocha, Nord, Gruvbox, Solarized}

// All returns every theme in navigation order.
func All() []ID {
	out := make([]ID, Count)
	copy(out, ordering[:])
	return out
}

// Valid reports whether id is a member of the enumeration.
func (id ID) Valid() bool {
	return id >= 0 && id < idCount
}

// Index returns the position of id in the navigation order, or -1.
func (id ID) Index() int {
	if !id.Valid() {
		return -1
	}
	return int(id)
}

// Next returns the theme after id, wrapping to the first.
func Next(id ID) ID {
	return ordering[(index(id)+1)%Count]
}

// Previous returns the theme before id, wrapping to the last.
func Previous(id ID) ID {
	return ordering[(index(id)+Count-1)%Count]
}

// Next is shorthand for Next(id).
func (id ID) Next() ID { return Next(id) }

// Previous is shorthand for Previous(id).
func (id ID) Previous() ID { return Previous(id) }

// index treats out-of-range IDs as the first theme.
func index(id ID) int {
	if i := id.Index(); i >= 0 {
		return i
	}
	return 0
}

// String returns the display name, e.g. "CatppuccinMocha".
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return appearances[id].name
}

// Slug returns the kebab-case name used on the command line and in config files.
func (id ID) Slug() string {
	if !id.Valid() {
		return ""
	}
	return appearances[id].slug
}

// Names lists the slug of every theme in navigation order.
func Names() []string {
	names := make([]string, 0, Count)
	for _, id := range ordering {
		names = append(names, id.Slug())
	}
	return names
}

// Parse resolves a slug or display name, ignoring case, dashes and underscores.
func Parse(name string) (ID, error) {
	key := normalizeName(name)
	if key == "" {
		return Default, fmt.Errorf("%w: empty name", ErrUnknownTheme)
	}
	for _, id := range ordering {
		if key == normalizeName(id.Slug()) || key == normalizeName(id.String()) {
			return id, nil
		}
	}
	return Default, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownTheme, name, strings.Join(Names(), ", "))
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}
