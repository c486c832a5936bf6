package tydi

import "strings"

// ValidateName checks a field, variant, stream, or port name against the
// identifier rule: nonempty, ASCII letters/digits/underscores only, no
// leading digit, no leading or trailing underscore, and no two consecutive
// underscores. The rule guarantees that names joined with a double
// underscore can always be split back apart, so flattened hierarchical
// names cannot collide.
func ValidateName(name string) error {
	if name == "" {
		return newError(CodeInvalidIdentifier, "", "name cannot be empty")
	}
	if name[0] >= '0' && name[0] <= '9' {
		return newError(CodeInvalidIdentifier, name, "name cannot start with a digit")
	}
	if name[0] == '_' || name[len(name)-1] == '_' {
		return newError(CodeInvalidIdentifier, name, "name cannot start or end with an underscore")
	}
	prevUnderscore := false
	for _, c := range name {
		switch {
		case c == '_':
			if prevUnderscore {
				return newError(CodeInvalidIdentifier, name, "name cannot contain consecutive underscores")
			}
			prevUnderscore = true
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			prevUnderscore = false
		default:
			return newError(CodeInvalidIdentifier, name, "name must consist of letters, digits, and underscores")
		}
	}
	return nil
}

// checkUniqueNames rejects case-insensitive collisions within one name
// scope. The original casing is preserved for display; only the lowercase
// form acts as the uniqueness key.
func checkUniqueNames(names []string, path string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return newError(CodeDuplicateName, joinPath(path, name),
				"name %q collides case-insensitively with an earlier name", name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// PathName is a hierarchical name: an ordered sequence of identifier-rule
// segments. The empty path names the root stream of a type.
type PathName []string

// String joins the path segments with a double underscore. The empty path
// renders as the empty string.
func (p PathName) String() string {
	return strings.Join(p, "__")
}

// IsEmpty reports whether the path has no segments.
func (p PathName) IsEmpty() bool {
	return len(p) == 0
}

// withPrefix returns a new path with name prepended. The receiver is not
// modified.
func (p PathName) withPrefix(name string) PathName {
	out := make(PathName, 0, len(p)+1)
	out = append(out, name)
	out = append(out, p...)
	return out
}

// withSuffix returns a new path with name appended. The receiver is not
// modified.
func (p PathName) withSuffix(name string) PathName {
	out := make(PathName, 0, len(p)+1)
	out = append(out, p...)
	out = append(out, name)
	return out
}
