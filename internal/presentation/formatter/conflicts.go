package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-marks/internal/core/timeline"
	"github.com/penwyp/go-marks/internal/util"
)

// FormatConflicts lists the fields merge had to reconcile.
func FormatConflicts(w io.Writer, conflicts []timeline.Conflict, policy timeline.Policy) error {
	if len(conflicts) == 0 {
		_, err := fmt.Fprintln(w, "No conflicts.")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (policy: %s)\n", util.Colorize(fmt.Sprintf("%d conflict(s)", len(conflicts)), util.ColorYellow), policy)
	for _, c := range conflicts {
		id := c.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Fprintf(&b, "  %s %s:\n", id, c.Field)
		for _, v := range c.Values {
			fmt.Fprintf(&b, "    - %s\n", util.FirstLine(v))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
