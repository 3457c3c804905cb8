// Package utils provides small helpers shared by the CLI and the HTTP gateway
// that don't fit into a domain package.
package utils
