package helper

import "regexp"

// IdentifierRegex matches unquoted SQL identifiers. Table names that fail
// it are rejected before being interpolated into a query.
var IdentifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func IsValidIdentifier(s string) bool {
	return IdentifierRegex.MatchString(s)
}
