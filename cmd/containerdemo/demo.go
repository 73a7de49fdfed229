package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/amp-labs/amp-container/compare"
	"github.com/amp-labs/amp-container/container"
	"github.com/amp-labs/amp-container/order"
	"github.com/amp-labs/amp-container/sortable"
)

type namedPair struct {
	name string
	pair order.Pair[sortable.Int]
}

// traversals builds the begin/end pair for each traversal order of c.
func traversals(c *container.Container[sortable.Int]) []namedPair {
	return []namedPair{
		{name: "insertion", pair: order.Insertion(c)},
		{name: "reverse", pair: order.Reverse(c)},
		{name: "ascending", pair: order.Ascending(c)},
		{name: "descending", pair: order.Descending(c)},
		{name: "side-cross", pair: order.SideCross(c)},
		{name: "middle-out", pair: order.MiddleOut(c)},
	}
}

// writeTraversal walks begin to end and writes one "name: e1 e2 ... en" line.
func writeTraversal[T compare.Comparable[T]](w io.Writer, name string, pair order.Pair[T]) error {
	cur, endCur := pair.Unpack()

	if _, err := fmt.Fprintf(w, "%s:", name); err != nil {
		return err
	}

	for !cur.Equals(endCur) {
		v, err := cur.Value()
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, " %v", v); err != nil {
			return err
		}

		if err := cur.Advance(); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	return nil
}

// writeAllTraversals writes all six traversal orders of c to w.
func writeAllTraversals(w io.Writer, c *container.Container[sortable.Int], log *slog.Logger) error {
	log.Debug("building traversals", "size", c.Size())

	for _, t := range traversals(c) {
		if err := writeTraversal(w, t.name, t.pair); err != nil {
			return fmt.Errorf("traversal %s: %w", t.name, err)
		}
	}

	return nil
}
