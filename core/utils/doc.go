// Package utils provides small conversion helpers shared by the HTTP handlers
// and the CLI: identifier parsing and optional on/off switches read from
// query strings or flags.
package utils
