// Package access resolves which employees' payroll a caller may view.
package access

import "strings"

// Kind enum
type Kind string

const (
	KindAll      Kind = "all"
	KindUserOnly Kind = "user_only"
	KindNamed    Kind = "named"
)

type Scope struct {
	Kind  Kind
	Names []string
}

func All() Scope { return Scope{Kind: KindAll} }

func UserOnly() Scope { return Scope{Kind: KindUserOnly} }

func Named(names ...string) Scope { return Scope{Kind: KindNamed, Names: names} }

// ParseScope reads the scope claim of a token. Unknown values resolve to
// UserOnly, the narrowest view.
func ParseScope(kind string, names []string) Scope {
	switch Kind(kind) {
	case KindAll:
		return All()
	case KindNamed:
		return Named(names...)
	default:
		return UserOnly()
	}
}

// AllowedNames returns the set of employee names visible under scope. When
// restricted is false every employee is visible and the set is nil. Names
// are compared case-insensitively.
func AllowedNames(scope Scope, currentUser string) (allowed map[string]struct{}, restricted bool) {
	switch scope.Kind {
	case KindAll:
		return nil, false
	case KindNamed:
		allowed = make(map[string]struct{}, len(scope.Names))
		for _, n := range scope.Names {
			if key := normalize(n); key != "" {
				allowed[key] = struct{}{}
			}
		}
		return allowed, true
	default:
		allowed = make(map[string]struct{}, 1)
		if key := normalize(currentUser); key != "" {
			allowed[key] = struct{}{}
		}
		return allowed, true
	}
}

// Permits reports whether name is inside the allowed set.
func Permits(allowed map[string]struct{}, restricted bool, name string) bool {
	if !restricted {
		return true
	}
	_, ok := allowed[normalize(name)]
	return ok
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
