// Package jsonutil converts between JSON strings, YAML documents, query strings
// and the map[string]any structures the rest of util-kit works on. It also exposes
// byte-level RFC 7396 merge patches and RFC 6902 operation lists.
package jsonutil
