package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

func TestTimelineCommand(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "vid-1.json")
	body := `{"audio_url":"a.mp3","script":"One two three.",
		"question_data":{"statement":"Pick one","options":["A) x","B) y"],"answer":"A"}}`
	if err := os.WriteFile(spec, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"timeline", spec, "--duration", "20"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var layers []models.Layer
	if err := json.Unmarshal(out.Bytes(), &layers); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}

	// background, 1 estimated caption + 3 words, statement, options, 5 digits, answer
	if len(layers) != 13 {
		t.Fatalf("layers = %d, want 13", len(layers))
	}
	if layers[0].Kind != models.LayerBackground {
		t.Errorf("first layer = %s, want background", layers[0].Kind)
	}
	if layers[len(layers)-1].Kind != models.LayerAnswerReveal {
		t.Errorf("last layer = %s, want answer reveal", layers[len(layers)-1].Kind)
	}
}

func TestTimelineCommandRequiresDuration(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"timeline", "missing.json"})
	if err := root.Execute(); err == nil {
		t.Fatal("Execute() should fail without --duration")
	}
}
