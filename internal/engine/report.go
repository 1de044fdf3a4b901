package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Report summarizes one completed transform.
type Report struct {
	Input        string
	Output       string
	Scenes       int
	Objects      int
	ObjectsMoved int
	RangesMoved  int
	Layers       map[int]int
	Elapsed      time.Duration
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s -> %s: %d scenes, %d objects (%d relabeled, %d ranges moved) in %s",
		r.Input, r.Output, r.Scenes, r.Objects, r.ObjectsMoved, r.RangesMoved, r.Elapsed.Round(time.Millisecond))

	layers := make([]int, 0, len(r.Layers))
	for l := range r.Layers {
		layers = append(layers, l)
	}
	sort.Ints(layers)
	if len(layers) > 0 {
		b.WriteString(" | layers:")
		for _, l := range layers {
			fmt.Fprintf(&b, " %d=%d", l, r.Layers[l])
		}
	}
	return b.String()
}
