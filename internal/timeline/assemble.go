package timeline

import (
	"fmt"
	"strconv"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

// ComputeQuestionWindow returns when the question overlay starts and how long it stays.
// The answer reveal follows immediately after.
func ComputeQuestionWindow(total models.Seconds) (models.Seconds, models.Seconds) {
	return total * QuestionStartFraction, QuestionDuration
}

// Assemble validates the render request and returns background, captions, question overlay and
// answer reveal layers, in stacking order, clamped to [0, audioDuration].
func (a *implAssembler) Assemble(spec models.RenderSpec, audioDuration models.Seconds) ([]models.Layer, error) {
	if audioDuration <= 0 {
		return nil, fmt.Errorf("%w: audio duration %v", ErrInvalidDuration, audioDuration)
	}
	if err := Validate(spec); err != nil {
		return nil, err
	}

	layers := []models.Layer{a.BuildBackground(audioDuration, spec.TemplateID)}
	layers = append(layers, a.BuildCaptions(spec.Captions)...)

	qStart, qDuration := ComputeQuestionWindow(audioDuration)
	layers = append(layers, a.BuildQuestionOverlay(*spec.Question, qStart, qDuration)...)
	layers = append(layers, a.BuildAnswerReveal(spec.Question.Answer, qStart+qDuration, AnswerDuration)...)

	return clamp(layers, audioDuration), nil
}

func (a *implAssembler) BuildBackground(duration models.Seconds, templateID int) models.Layer {
	tpl := a.templates.Resolve(templateID)
	return models.Layer{
		Start: 0,
		End:   duration,
		Kind:  models.LayerBackground,
		Payload: models.Payload{
			Color: tpl.Background,
			Fill:  true,
		},
	}
}

func (a *implAssembler) BuildCaptions(captions []models.Caption) []models.Layer {
	var layers []models.Layer
	for _, c := range captions {
		layers = append(layers, models.Layer{
			Start: c.Start,
			End:   c.End,
			Kind:  models.LayerCaption,
			Payload: models.Payload{
				Text:        c.Text,
				Font:        models.FontBold,
				FontSize:    60,
				Color:       models.White,
				StrokeColor: models.Black,
				StrokeWidth: 2,
				Position:    a.layout.CaptionAnchor,
				Align:       models.AlignCenter,
				MaxWidth:    a.layout.TextWidth,
			},
		})

		for _, w := range c.Words {
			layers = append(layers, models.Layer{
				Start: w.Start,
				End:   w.End,
				Kind:  models.LayerWordHighlight,
				Payload: models.Payload{
					Text:        w.Text,
					Font:        models.FontBold,
					FontSize:    60,
					Color:       models.Yellow,
					StrokeColor: models.Black,
					StrokeWidth: 2,
					Position:    a.layout.CaptionAnchor,
					Align:       models.AlignCenter,
				},
			})
		}
	}
	return layers
}

func (a *implAssembler) BuildQuestionOverlay(q models.Question, start, duration models.Seconds) []models.Layer {
	layers := []models.Layer{{
		Start: start,
		End:   start + duration,
		Kind:  models.LayerQuestionStatement,
		Payload: models.Payload{
			Text:        truncate(q.Statement, MaxStatementChars),
			Font:        models.FontBold,
			FontSize:    50,
			Color:       models.White,
			StrokeColor: models.Black,
			StrokeWidth: 2,
			Position:    a.layout.StatementAnchor,
			Align:       models.AlignCenter,
			MaxWidth:    a.layout.TextWidth,
		},
	}}

	if q.Options != "" {
		layers = append(layers, models.Layer{
			Start: start,
			End:   start + duration,
			Kind:  models.LayerQuestionOptions,
			Payload: models.Payload{
				Text:        truncate(string(q.Options), MaxOptionsChars),
				Font:        models.FontRegular,
				FontSize:    40,
				Color:       models.White,
				StrokeColor: models.Black,
				StrokeWidth: 1,
				Position:    a.layout.OptionsAnchor,
				Align:       models.AlignLeft,
				MaxWidth:    a.layout.TextWidth,
			},
		})
	}

	for i := CountdownFrom; i >= 1; i-- {
		digitStart := start + models.Seconds(CountdownFrom-i)*CountdownDigitLen
		color := models.Yellow
		if i <= dangerThreshold {
			color = models.Red
		}
		layers = append(layers, models.Layer{
			Start: digitStart,
			End:   digitStart + CountdownDigitLen,
			Kind:  models.LayerCountdownDigit,
			Payload: models.Payload{
				Text:        strconv.Itoa(i),
				Font:        models.FontBold,
				FontSize:    120,
				Color:       color,
				StrokeColor: models.Black,
				StrokeWidth: 4,
				Position:    a.layout.CountdownAnchor,
				Align:       models.AlignCenter,
			},
		})
	}

	return layers
}

func (a *implAssembler) BuildAnswerReveal(answer string, start, duration models.Seconds) []models.Layer {
	return []models.Layer{{
		Start: start,
		End:   start + duration,
		Kind:  models.LayerAnswerReveal,
		Payload: models.Payload{
			Text:        "Answer: " + answer,
			Font:        models.FontBold,
			FontSize:    70,
			Color:       models.LightGreen,
			StrokeColor: models.Black,
			StrokeWidth: 3,
			Position:    a.layout.AnswerAnchor,
			Align:       models.AlignCenter,
			MaxWidth:    a.layout.TextWidth,
			FadeIn:      AnswerFadeIn,
		},
	}}
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// clamp trims every layer into [0, total]. Layers that had a positive span but lie
// entirely outside the range are dropped.
func clamp(layers []models.Layer, total models.Seconds) []models.Layer {
	out := make([]models.Layer, 0, len(layers))
	for _, l := range layers {
		positive := l.End > l.Start
		if l.Start < 0 {
			l.Start = 0
		}
		if l.End > total {
			l.End = total
		}
		if l.Start > total {
			l.Start = total
		}
		if positive && l.End <= l.Start {
			continue
		}
		out = append(out, l)
	}
	return out
}
