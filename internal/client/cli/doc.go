// Package cli implements the interactive terminal client: the root
// command loop, the event page, and the prompts they are built from.
// Views derive the current identity on every render, so control
// availability always matches what the stored credential proves.
package cli
