package timeline

import "github.com/nguyentantai21042004/quiz-reel/internal/models"

const (
	// QuestionStartFraction places the question window at 40% of the video.
	// No script alignment is attempted.
	QuestionStartFraction = 0.4

	QuestionDuration  models.Seconds = 5.0
	AnswerDuration    models.Seconds = 3.0
	AnswerFadeIn      models.Seconds = 0.5
	CountdownFrom                    = 5
	CountdownDigitLen models.Seconds = 1.0

	MaxStatementChars = 200
	MaxOptionsChars   = 300

	// digits at or below this value render in the danger color
	dangerThreshold = 2
)

// Layout holds the fixed screen anchors for a frame size.
type Layout struct {
	Width  int
	Height int

	// CaptionAnchor is shared by caption text and its word highlights,
	// so each highlight sits over the caption line it belongs to.
	CaptionAnchor   models.Position
	StatementAnchor models.Position
	OptionsAnchor   models.Position
	CountdownAnchor models.Position
	AnswerAnchor    models.Position

	// TextWidth is the wrap width for block text.
	TextWidth int
}

// NewLayout derives anchors for a width x height frame.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		CaptionAnchor:   models.Position{CenterX: true, Y: height - 300},
		StatementAnchor: models.Position{CenterX: true, Y: 200},
		OptionsAnchor:   models.Position{X: 50, Y: 500},
		CountdownAnchor: models.Position{CenterX: true, CenterY: true},
		AnswerAnchor:    models.Position{CenterX: true, Y: height/2 - 100},
		TextWidth:       width - 100,
	}
}

// DefaultLayout is the 9:16 vertical frame.
func DefaultLayout() Layout {
	return NewLayout(1080, 1920)
}
