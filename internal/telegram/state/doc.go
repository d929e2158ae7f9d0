// Package state tracks per-user pending input between a prompt and the
// follow-up message that answers it.
package state
