package validation

import "regexp"

// objectIDRegex matches the document-store identifier format:
// exactly 24 hexadecimal characters.
var objectIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsValidObjectID checks whether a string is a well-formed document
// identifier.
//
// The check is purely syntactic; it says nothing about whether a
// document with that id exists. Handlers run it (via the `objectid`
// tag) before any store access so malformed ids never reach a query.
func IsValidObjectID(id string) bool {
	return objectIDRegex.MatchString(id)
}
