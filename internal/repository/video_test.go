package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nguyentantai21042004/quiz-reel/internal/config"
	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

func testDB(t *testing.T) (*gorm.DB, VideoRepo) {
	t.Helper()
	db, err := Open(config.DatabaseConfig{Driver: config.DriverSQLite, DSN: "file::memory:"})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	repo := NewVideoRepo(db, logger.NewNop())
	if err := repo.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db, repo
}

func strPtr(s string) *string { return &s }

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	now := time.Now().UTC()
	questions := []Question{
		{ID: "q1", QuestionStatement: "What is 6 x 7?", Options: strPtr("A. 42\nB. 24"), Answer: "A", Solution: strPtr("6 x 7 = 42")},
	}
	videos := []Video{
		{
			ID:           "v1",
			QuestionID:   "q1",
			AudioURL:     "https://example.com/v1.mp3",
			CaptionsData: datatypes.JSON(`[{"text":"Hello world","start":"0.00","end":"0.80","words":[{"word":"Hello","start":"0.00","end":"0.40"},{"word":"world","start":"0.40","end":"0.80"}]}]`),
			TemplateID:   2,
			Status:       models.StatusCaptionsGenerated,
			CreatedAt:    now.Add(-time.Minute),
		},
		{ID: "v2", QuestionID: "missing", AudioURL: "https://example.com/v2.mp3", Status: models.StatusCaptionsGenerated, CreatedAt: now},
		{ID: "v3", Status: models.StatusVideoRendered, CreatedAt: now},
	}
	if err := db.Create(&questions).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&videos).Error; err != nil {
		t.Fatal(err)
	}
}

func TestListByStatus(t *testing.T) {
	db, repo := testDB(t)
	seed(t, db)

	got, err := repo.ListByStatus(context.Background(), models.StatusCaptionsGenerated, 0)
	if err != nil {
		t.Fatalf("ListByStatus() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "v1" || got[1].ID != "v2" {
		t.Errorf("ListByStatus() = %+v, want [v1 v2]", got)
	}

	got, err = repo.ListByStatus(context.Background(), models.StatusCaptionsGenerated, 1)
	if err != nil || len(got) != 1 {
		t.Errorf("ListByStatus(limit 1) = %d, %v", len(got), err)
	}
}

func TestGetRenderSpec(t *testing.T) {
	db, repo := testDB(t)
	seed(t, db)

	spec, err := repo.GetRenderSpec(context.Background(), "v1")
	if err != nil {
		t.Fatalf("GetRenderSpec() error = %v", err)
	}
	if spec.AudioURL != "https://example.com/v1.mp3" || spec.TemplateID != 2 {
		t.Errorf("spec = %+v", spec)
	}
	if len(spec.Captions) != 1 || len(spec.Captions[0].Words) != 2 || spec.Captions[0].Words[1].Text != "world" {
		t.Errorf("captions = %+v", spec.Captions)
	}
	if spec.Captions[0].End != 0.8 {
		t.Errorf("caption end = %v, want 0.8", spec.Captions[0].End)
	}
	if spec.Question == nil || spec.Question.Answer != "A" || spec.Question.Options != "A. 42\nB. 24" {
		t.Errorf("question = %+v", spec.Question)
	}
}

func TestGetRenderSpecMissingQuestion(t *testing.T) {
	db, repo := testDB(t)
	seed(t, db)

	spec, err := repo.GetRenderSpec(context.Background(), "v2")
	if err != nil {
		t.Fatalf("GetRenderSpec() error = %v", err)
	}
	if spec.Question != nil {
		t.Errorf("Question = %+v, want nil", spec.Question)
	}
	if spec.TemplateID != 1 {
		t.Errorf("TemplateID = %d, want default 1", spec.TemplateID)
	}
}

func TestGetRenderSpecNotFound(t *testing.T) {
	_, repo := testDB(t)
	if _, err := repo.GetRenderSpec(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRenderSpec() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	db, repo := testDB(t)
	seed(t, db)
	ctx := context.Background()

	url := "https://cdn.example.com/videos/rendered_video_v1.mp4"
	if err := repo.UpdateStatus(ctx, "v1", models.StatusVideoRendered, &url); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if err := repo.UpdateStatus(ctx, "v2", models.StatusError, nil); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	var v1, v2 Video
	db.First(&v1, "id = ?", "v1")
	db.First(&v2, "id = ?", "v2")
	if v1.Status != models.StatusVideoRendered || v1.VideoURL == nil || *v1.VideoURL != url {
		t.Errorf("v1 = %+v", v1)
	}
	if v2.Status != models.StatusError || v2.VideoURL != nil {
		t.Errorf("v2 = %+v", v2)
	}

	if err := repo.UpdateStatus(ctx, "nope", models.StatusError, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateStatus() error = %v, want ErrNotFound", err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(config.DatabaseConfig{Driver: "mysql"}); err == nil {
		t.Error("Open() should fail for an unknown driver")
	}
}

func TestDecodeOptions(t *testing.T) {
	tests := []struct {
		raw  string
		want models.Options
	}{
		{"A. 1\nB. 2", "A. 1\nB. 2"},
		{`["A. 1","B. 2"]`, "A. 1\nB. 2"},
		{"[not json", "[not json"},
	}
	for _, tt := range tests {
		if got := decodeOptions(tt.raw); got != tt.want {
			t.Errorf("decodeOptions(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
