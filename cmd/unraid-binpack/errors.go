package main

import (
	"io"

	"github.com/seethruhead/unraid-binpack/apperror"
)

// reportError is the single CLI-boundary translation point spec.md §7
// requires: every domain error surfaces here as title/detail/hint prose,
// never as a raw Go error value.
func reportError(w io.Writer, err error) {
	t := apperror.Translate(err)
	fprintf(w, "%s: %s\n", t.Title, t.Detail)
	fprintf(w, "  %s\n", t.Hint)
}
