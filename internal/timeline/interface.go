package timeline

import "github.com/nguyentantai21042004/quiz-reel/internal/models"

// Assembler turns a render spec into an ordered list of timed layers.
// It holds no mutable state: identical input yields identical output.
type Assembler interface {
	Assemble(spec models.RenderSpec, audioDuration models.Seconds) ([]models.Layer, error)
	BuildBackground(duration models.Seconds, templateID int) models.Layer
	BuildCaptions(captions []models.Caption) []models.Layer
	BuildQuestionOverlay(q models.Question, start, duration models.Seconds) []models.Layer
	BuildAnswerReveal(answer string, start, duration models.Seconds) []models.Layer
}
