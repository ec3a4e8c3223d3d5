package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Seconds is a point or span on the video timeline.
// It decodes from JSON numbers and from numeric strings such as "1.20".
// NaN and infinities are rejected.
type Seconds float64

func (s *Seconds) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*s = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)
	if raw == "" {
		*s = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("parse seconds %q: %w", raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("parse seconds %q: not a finite number", raw)
	}
	*s = Seconds(v)
	return nil
}

// Word is a single spoken word with its timing inside a caption.
type Word struct {
	Start Seconds `json:"start"`
	End   Seconds `json:"end"`
	Text  string  `json:"text"`
}

// UnmarshalJSON accepts both "text" and "word" for the spoken word.
func (w *Word) UnmarshalJSON(data []byte) error {
	var aux struct {
		Start Seconds `json:"start"`
		End   Seconds `json:"end"`
		Text  string  `json:"text"`
		Word  string  `json:"word"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	w.Start = aux.Start
	w.End = aux.End
	w.Text = aux.Text
	if w.Text == "" {
		w.Text = aux.Word
	}
	return nil
}

// Caption is one on-screen phrase with optional per-word timings.
type Caption struct {
	Start Seconds `json:"start"`
	End   Seconds `json:"end"`
	Text  string  `json:"text"`
	Words []Word  `json:"words,omitempty"`
}

// Options is the multiple-choice block of a question.
// It decodes from a single string or from a list of strings joined one per line.
type Options string

func (o *Options) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*o = ""
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("decode options list: %w", err)
		}
		*o = Options(strings.Join(list, "\n"))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode options: %w", err)
	}
	*o = Options(s)
	return nil
}

// Question is the quiz payload shown during the countdown window.
type Question struct {
	Statement string  `json:"statement"`
	Options   Options `json:"options,omitempty"`
	Answer    string  `json:"answer"`
	Solution  string  `json:"solution,omitempty"`
}

// RenderSpec is the complete input description for one video render.
type RenderSpec struct {
	VideoID    string    `json:"video_id"`
	AudioURL   string    `json:"audio_url"`
	Captions   []Caption `json:"captions"`
	Question   *Question `json:"question_data"`
	TemplateID int       `json:"template_id"`
	Script     string    `json:"script,omitempty"`
}
