// Package logging defines the Logger interface used throughout the
// application together with a zerolog-backed adapter. Keeping callers on
// the interface means the backend can be swapped (or silenced in tests)
// without touching call sites.
package logging
