package timeline

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
	"github.com/nguyentantai21042004/quiz-reel/internal/template"
)

func newTestAssembler() Assembler {
	return New(DefaultLayout(), template.New())
}

func exampleSpec() models.RenderSpec {
	return models.RenderSpec{
		VideoID:    "vid-1",
		AudioURL:   "https://example.com/a.mp3",
		TemplateID: 3,
		Captions: []models.Caption{{
			Start: 0,
			End:   2,
			Text:  "Hello world",
			Words: []models.Word{
				{Start: 0, End: 1, Text: "Hello"},
				{Start: 1, End: 2, Text: "world"},
			},
		}},
		Question: &models.Question{Statement: "Q?", Answer: "42"},
	}
}

func layersOf(layers []models.Layer, kind models.LayerKind) []models.Layer {
	var out []models.Layer
	for _, l := range layers {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}

func TestAssembleExample(t *testing.T) {
	a := newTestAssembler()
	layers, err := a.Assemble(exampleSpec(), 20)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	wantKinds := []models.LayerKind{
		models.LayerBackground,
		models.LayerCaption,
		models.LayerWordHighlight,
		models.LayerWordHighlight,
		models.LayerQuestionStatement,
		models.LayerCountdownDigit,
		models.LayerCountdownDigit,
		models.LayerCountdownDigit,
		models.LayerCountdownDigit,
		models.LayerCountdownDigit,
		models.LayerAnswerReveal,
	}
	if len(layers) != len(wantKinds) {
		t.Fatalf("len(layers) = %d, want %d", len(layers), len(wantKinds))
	}
	for i, k := range wantKinds {
		if layers[i].Kind != k {
			t.Errorf("layers[%d].Kind = %s, want %s", i, layers[i].Kind, k)
		}
	}

	check := func(name string, l models.Layer, start, end models.Seconds) {
		t.Helper()
		if l.Start != start || l.End != end {
			t.Errorf("%s = [%v, %v), want [%v, %v)", name, l.Start, l.End, start, end)
		}
	}
	check("background", layers[0], 0, 20)
	check("caption", layers[1], 0, 2)
	check("word 0", layers[2], 0, 1)
	check("word 1", layers[3], 1, 2)
	check("statement", layers[4], 8, 13)
	check("first digit", layers[5], 8, 9)
	check("last digit", layers[9], 12, 13)
	check("answer", layers[10], 13, 16)

	if got := layers[0].Payload.Color.Hex(); got != "#059669" {
		t.Errorf("background color = %s, want #059669", got)
	}
	if layers[10].Payload.Text != "Answer: 42" {
		t.Errorf("answer text = %q", layers[10].Payload.Text)
	}
	if layers[10].Payload.FadeIn != 0.5 {
		t.Errorf("answer fade = %v, want 0.5", layers[10].Payload.FadeIn)
	}
}

func TestLayersWithinDuration(t *testing.T) {
	a := newTestAssembler()
	for _, d := range []models.Seconds{3, 10, 12.5, 20, 61.7} {
		layers, err := a.Assemble(exampleSpec(), d)
		if err != nil {
			t.Fatalf("Assemble(%v) error = %v", d, err)
		}
		for i, l := range layers {
			if l.Start < 0 || l.End > d || l.End < l.Start {
				t.Errorf("duration %v: layers[%d] %s = [%v, %v] outside [0, %v]", d, i, l.Kind, l.Start, l.End, d)
			}
		}
	}
}

func TestShortAudioClampsOverlay(t *testing.T) {
	a := newTestAssembler()
	layers, err := a.Assemble(exampleSpec(), 10)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	// window starts at 4; digits at 4..9, answer would start at 9 and end at 12
	answer := layersOf(layers, models.LayerAnswerReveal)
	if len(answer) != 1 || answer[0].Start != 9 || answer[0].End != 10 {
		t.Errorf("answer = %+v, want [9, 10]", answer)
	}

	layers, err = a.Assemble(exampleSpec(), 5)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if got := layersOf(layers, models.LayerAnswerReveal); len(got) != 0 {
		t.Errorf("answer layers = %d, want 0 for 5s audio", len(got))
	}
	if got := layersOf(layers, models.LayerCountdownDigit); len(got) != 3 {
		t.Errorf("countdown layers = %d, want 3 for 5s audio", len(got))
	}
}

func TestCountdown(t *testing.T) {
	a := newTestAssembler()
	start := models.Seconds(7.25)
	layers := layersOf(a.BuildQuestionOverlay(models.Question{Statement: "s"}, start, QuestionDuration), models.LayerCountdownDigit)

	if len(layers) != 5 {
		t.Fatalf("countdown layers = %d, want 5", len(layers))
	}
	for i, l := range layers {
		wantDigit := 5 - i
		if l.Payload.Text != string(rune('0'+wantDigit)) {
			t.Errorf("digit %d text = %q, want %d", i, l.Payload.Text, wantDigit)
		}
		if l.Duration() != 1 {
			t.Errorf("digit %d duration = %v, want 1", i, l.Duration())
		}
		if l.Start != start+models.Seconds(i) {
			t.Errorf("digit %d start = %v, want %v", i, l.Start, start+models.Seconds(i))
		}
		wantColor := models.Yellow
		if wantDigit <= 2 {
			wantColor = models.Red
		}
		if l.Payload.Color != wantColor {
			t.Errorf("digit %d color = %v, want %v", wantDigit, l.Payload.Color, wantColor)
		}
	}
	if layers[4].End != start+5 {
		t.Errorf("countdown end = %v, want %v", layers[4].End, start+5)
	}
}

func TestQuestionWindow(t *testing.T) {
	for _, d := range []models.Seconds{10, 20, 33.3, 90} {
		start, dur := ComputeQuestionWindow(d)
		if start != d*0.4 {
			t.Errorf("ComputeQuestionWindow(%v) start = %v, want %v", d, start, d*0.4)
		}
		if dur != 5 {
			t.Errorf("ComputeQuestionWindow(%v) duration = %v, want 5", d, dur)
		}
	}
}

func TestAnswerFollowsQuestion(t *testing.T) {
	a := newTestAssembler()
	d := models.Seconds(45)
	layers, err := a.Assemble(exampleSpec(), d)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	answer := layersOf(layers, models.LayerAnswerReveal)
	if len(answer) != 1 {
		t.Fatalf("answer layers = %d, want 1", len(answer))
	}
	if want := d*0.4 + 5; answer[0].Start != want {
		t.Errorf("answer start = %v, want %v", answer[0].Start, want)
	}
	if answer[0].Duration() != 3 {
		t.Errorf("answer duration = %v, want 3", answer[0].Duration())
	}
}

func TestTruncation(t *testing.T) {
	a := newTestAssembler()
	q := models.Question{
		Statement: strings.Repeat("s", 250),
		Options:   models.Options(strings.Repeat("o", 400)),
	}
	layers := a.BuildQuestionOverlay(q, 0, QuestionDuration)

	stmt := layersOf(layers, models.LayerQuestionStatement)
	if len(stmt) != 1 || stmt[0].Payload.Text != strings.Repeat("s", 200) {
		t.Errorf("statement not truncated to 200 chars: %d", len(stmt[0].Payload.Text))
	}
	opts := layersOf(layers, models.LayerQuestionOptions)
	if len(opts) != 1 || opts[0].Payload.Text != strings.Repeat("o", 300) {
		t.Errorf("options not truncated to 300 chars")
	}
	if opts[0].Payload.Position.Y <= stmt[0].Payload.Position.Y {
		t.Errorf("options should sit below the statement")
	}
}

func TestTruncationKeepsRunes(t *testing.T) {
	got := truncate(strings.Repeat("é", 210), MaxStatementChars)
	if n := len([]rune(got)); n != 200 {
		t.Errorf("truncate() kept %d runes, want 200", n)
	}
}

func TestNoOptionsLayer(t *testing.T) {
	a := newTestAssembler()
	layers := a.BuildQuestionOverlay(models.Question{Statement: "s"}, 0, QuestionDuration)
	if got := layersOf(layers, models.LayerQuestionOptions); len(got) != 0 {
		t.Errorf("options layers = %d, want 0", len(got))
	}
	if len(layers) != 6 {
		t.Errorf("overlay layers = %d, want 6", len(layers))
	}
}

func TestWordHighlightSharesCaptionAnchor(t *testing.T) {
	a := newTestAssembler()
	layers := a.BuildCaptions(exampleSpec().Captions)
	caption := layers[0]
	for _, l := range layers[1:] {
		if l.Payload.Position != caption.Payload.Position {
			t.Errorf("highlight position = %+v, want %+v", l.Payload.Position, caption.Payload.Position)
		}
	}
	if caption.Payload.Position.Y != 1620 || !caption.Payload.Position.CenterX {
		t.Errorf("caption anchor = %+v, want centered at y=1620", caption.Payload.Position)
	}
}

func TestUnknownTemplateBackground(t *testing.T) {
	a := newTestAssembler()
	if a.BuildBackground(10, 99).Payload.Color != a.BuildBackground(10, 1).Payload.Color {
		t.Error("template 99 should resolve to template 1")
	}
}

func TestAssembleIdempotent(t *testing.T) {
	a := newTestAssembler()
	first, err := a.Assemble(exampleSpec(), 20)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Assemble(exampleSpec(), 20)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Assemble() is not idempotent")
	}
}

func TestAssembleErrors(t *testing.T) {
	a := newTestAssembler()

	tests := []struct {
		name     string
		mutate   func(*models.RenderSpec)
		duration models.Seconds
		want     error
	}{
		{"zero duration", func(*models.RenderSpec) {}, 0, ErrInvalidDuration},
		{"missing question", func(s *models.RenderSpec) { s.Question = nil }, 20, ErrMissingQuestion},
		{"caption end before start", func(s *models.RenderSpec) {
			s.Captions[0].Start, s.Captions[0].End = 3, 2
			s.Captions[0].Words = nil
		}, 20, ErrInvalidTiming},
		{"word end before start", func(s *models.RenderSpec) {
			s.Captions[0].Words[1].End = 0.5
		}, 20, ErrInvalidTiming},
		{"word outside caption", func(s *models.RenderSpec) {
			s.Captions[0].Words[1].End = 2.5
		}, 20, ErrInvalidTiming},
		{"overlapping words", func(s *models.RenderSpec) {
			s.Captions[0].Words[1].Start = 0.5
		}, 20, ErrInvalidTiming},
		{"NaN caption start", func(s *models.RenderSpec) {
			s.Captions[0].Start = models.Seconds(math.NaN())
			s.Captions[0].Words = nil
		}, 20, ErrInvalidTiming},
		{"infinite word end", func(s *models.RenderSpec) {
			s.Captions[0].Words[1].End = models.Seconds(math.Inf(1))
		}, 20, ErrInvalidTiming},
		{"negative start", func(s *models.RenderSpec) {
			s.Captions[0].Start = -1
		}, 20, ErrInvalidTiming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := exampleSpec()
			tt.mutate(&spec)
			_, err := a.Assemble(spec, tt.duration)
			if !errors.Is(err, tt.want) {
				t.Errorf("Assemble() error = %v, want %v", err, tt.want)
			}
		})
	}
}
