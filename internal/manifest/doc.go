// Package manifest parses and validates framework descriptor manifests.
// Each supported framework ships a small YAML file declaring its identity,
// the minimum Node.js version it needs, the package managers it supports and
// how its starter project is produced. Descriptors are checked against the
// embedded JSON Schema before use.
package manifest
