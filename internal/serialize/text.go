package serialize

import (
	"bufio"
	"fmt"
	"io"

	"github.com/okawa/aupshift/internal/model"
)

// WriteText dumps the model as an indented human-readable listing, one
// line per field, object and effect. The dump is for inspection only
// and is not meant to be re-imported.
func WriteText(w io.Writer, p *model.Project) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "project:")
	for _, f := range p.Global {
		fmt.Fprintf(bw, "  %s = %s\n", f.Key, f.Value)
	}

	for _, sc := range p.Scenes {
		fmt.Fprintf(bw, "scene %d:\n", sc.ID)
		for _, f := range sc.Fields {
			fmt.Fprintf(bw, "  %s = %s\n", f.Key, f.Value)
		}
		for _, o := range sortedByID(sc.Objects) {
			focus := ""
			if o.Focus {
				focus = " focus"
			}
			fmt.Fprintf(bw, "  object %d: layer=%d frame=%d..%d%s\n",
				o.ID, o.Layer, o.FrameStart, o.FrameEnd, focus)
			for _, f := range o.Extra {
				fmt.Fprintf(bw, "    %s = %s\n", f.Key, f.Value)
			}
			for _, e := range o.Effects {
				fmt.Fprintf(bw, "    effect %d.%d:\n", o.ID, e.Index)
				for _, f := range e.Fields {
					fmt.Fprintf(bw, "      %s = %s\n", f.Key, f.Value)
				}
			}
		}
	}
	return bw.Flush()
}
