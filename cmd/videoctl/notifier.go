package main

import (
	"fmt"
	"io"

	"myflix/internal/registry"
)

// writerNotifier prints notices as toast-style lines.
type writerNotifier struct {
	w io.Writer
}

func newWriterNotifier(w io.Writer) *writerNotifier {
	return &writerNotifier{w: w}
}

func (n *writerNotifier) Notify(notice registry.Notice) {
	fmt.Fprintf(n.w, "%s: %s\n", notice.Title, notice.Description)
}
