package compositor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

// first overlay input index: 0 is the background source, 1 the narration
const overlayInputOffset = 2

// buildFilterGraph chains every overlay on top of the background in order.
// Each overlay is enabled on the half-open interval [start, end) so back-to-back
// layers never share a frame.
func buildFilterGraph(overlays []overlay) string {
	if len(overlays) == 0 {
		return "[0:v]null[vout]"
	}

	var b strings.Builder
	prev := "[0:v]"
	for i, ov := range overlays {
		input := fmt.Sprintf("[%d:v]", i+overlayInputOffset)
		l := ov.layer

		if l.Payload.FadeIn > 0 {
			faded := fmt.Sprintf("[f%d]", i)
			fmt.Fprintf(&b, "%sformat=rgba,fade=t=in:st=%s:d=%s:alpha=1%s;",
				input, formatSeconds(l.Start), formatSeconds(l.Payload.FadeIn), faded)
			input = faded
		}

		out := fmt.Sprintf("[v%d]", i)
		if i == len(overlays)-1 {
			out = "[vout]"
		}
		fmt.Fprintf(&b, "%s%soverlay=x=%s:y=%s:enable='gte(t,%s)*lt(t,%s)'%s",
			prev, input, ov.x, ov.y, formatSeconds(l.Start), formatSeconds(l.End), out)
		if i < len(overlays)-1 {
			b.WriteString(";")
		}
		prev = out
	}
	return b.String()
}

// backgroundSource is the lavfi input for a solid color frame.
func backgroundSource(c models.RGB, width, height, fps int, d models.Seconds) string {
	return fmt.Sprintf("color=c=0x%02x%02x%02x:s=%dx%d:r=%d:d=%s",
		c.R, c.G, c.B, width, height, fps, formatSeconds(d))
}

func formatSeconds(s models.Seconds) string {
	return strconv.FormatFloat(float64(s), 'f', 3, 64)
}
