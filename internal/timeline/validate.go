package timeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

var (
	ErrInvalidTiming   = errors.New("invalid timing")
	ErrInvalidDuration = errors.New("invalid audio duration")
	ErrMissingQuestion = errors.New("missing question data")
)

// timingSlack absorbs rounding in word timings produced by upstream tools.
const timingSlack models.Seconds = 0.001

// Validate rejects specs the assembler cannot lay out: a missing question,
// non-finite or negative times, captions or words that end before they start,
// and words that fall outside their caption or overlap the previous word.
func Validate(spec models.RenderSpec) error {
	if spec.Question == nil {
		return ErrMissingQuestion
	}

	for i, c := range spec.Captions {
		if !finite(c.Start) || !finite(c.End) || c.Start < 0 || c.End < c.Start {
			return fmt.Errorf("%w: caption %d [%v, %v]", ErrInvalidTiming, i, c.Start, c.End)
		}
		for j, w := range c.Words {
			if !finite(w.Start) || !finite(w.End) || w.Start < 0 || w.End < w.Start {
				return fmt.Errorf("%w: caption %d word %d [%v, %v]", ErrInvalidTiming, i, j, w.Start, w.End)
			}
			if w.Start < c.Start-timingSlack || w.End > c.End+timingSlack {
				return fmt.Errorf("%w: caption %d word %d [%v, %v] outside caption [%v, %v]",
					ErrInvalidTiming, i, j, w.Start, w.End, c.Start, c.End)
			}
			if j > 0 && w.Start < c.Words[j-1].End-timingSlack {
				return fmt.Errorf("%w: caption %d word %d starts at %v before previous word ends at %v",
					ErrInvalidTiming, i, j, w.Start, c.Words[j-1].End)
			}
		}
	}

	return nil
}

func finite(s models.Seconds) bool {
	return !math.IsNaN(float64(s)) && !math.IsInf(float64(s), 0)
}
