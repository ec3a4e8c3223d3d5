// Package captions estimates caption and word timings from a narration script
// when no aligned captions are available.
package captions

import (
	"math"
	"strings"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

const (
	WordsPerSecond    = 2.5
	MaxWordsPerPhrase = 5
)

// Estimate splits script into phrases of at most MaxWordsPerPhrase words, breaking
// early after sentence-ending punctuation, and times every word at WordsPerSecond.
// Times are rounded to hundredths.
func Estimate(script string) []models.Caption {
	words := strings.Fields(script)
	perWord := 1 / WordsPerSecond

	var (
		out         []models.Caption
		phrase      []string
		phraseStart float64
	)

	for i, w := range words {
		phrase = append(phrase, w)
		if len(phrase) < MaxWordsPerPhrase && !endsSentence(w) && i != len(words)-1 {
			continue
		}

		c := models.Caption{
			Start: round2(phraseStart),
			End:   round2(phraseStart + float64(len(phrase))*perWord),
			Text:  strings.Join(phrase, " "),
		}
		for j, pw := range phrase {
			c.Words = append(c.Words, models.Word{
				Start: round2(phraseStart + float64(j)*perWord),
				End:   round2(phraseStart + float64(j+1)*perWord),
				Text:  pw,
			})
		}
		out = append(out, c)

		phraseStart += float64(len(phrase)) * perWord
		phrase = phrase[:0]
	}

	return out
}

func endsSentence(w string) bool {
	return strings.HasSuffix(w, ".") || strings.HasSuffix(w, "!") || strings.HasSuffix(w, "?")
}

func round2(v float64) models.Seconds {
	return models.Seconds(math.Round(v*100) / 100)
}
