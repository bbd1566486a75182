package engine

import "strings"

// IsProtectedNamespace reports whether a namespace denotes a system
// collection, which writes must never touch.
//
// The collection component is everything after the first dot separating it
// from the database prefix. It is protected when it starts with "system.",
// so "db.system.indexes" is protected while "db.systemic" is not. A
// namespace whose full name starts with "system." is protected too, whether
// it is a bare collection name or a database that shadows the reserved
// prefix.
func IsProtectedNamespace(namespace string) bool {

	if strings.HasPrefix(namespace, "system.") {
		return true
	}

	collection := namespace
	if i := strings.Index(namespace, "."); i >= 0 {
		collection = namespace[i+1:]
	}

	return strings.HasPrefix(collection, "system.")
}
