package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

var ErrNotFound = errors.New("video record not found")

// VideoRepo reads render inputs from and writes outcomes to the videos table.
type VideoRepo interface {
	ListByStatus(ctx context.Context, status string, limit int) ([]Video, error)
	GetRenderSpec(ctx context.Context, videoID string) (models.RenderSpec, error)
	UpdateStatus(ctx context.Context, videoID, status string, videoURL *string) error
	Migrate(ctx context.Context) error
}

type videoRepo struct {
	db  *gorm.DB
	log logger.Logger
}

func NewVideoRepo(db *gorm.DB, log logger.Logger) VideoRepo {
	return &videoRepo{
		db:  db,
		log: log.With("repo", "VideoRepo"),
	}
}

// Migrate creates the tables when they do not exist.
func (r *videoRepo) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&Video{}, &Question{})
}

// ListByStatus returns records in status, oldest first. limit <= 0 means no limit.
func (r *videoRepo) ListByStatus(ctx context.Context, status string, limit int) ([]Video, error) {
	var out []Video
	q := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list videos by status %s: %w", status, err)
	}
	return out, nil
}

// GetRenderSpec loads a video record and its question as a render spec.
// A missing question leaves spec.Question nil.
func (r *videoRepo) GetRenderSpec(ctx context.Context, videoID string) (models.RenderSpec, error) {
	var v Video
	err := r.db.WithContext(ctx).Where("id = ?", videoID).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RenderSpec{}, fmt.Errorf("%w: %s", ErrNotFound, videoID)
	}
	if err != nil {
		return models.RenderSpec{}, fmt.Errorf("get video %s: %w", videoID, err)
	}

	spec := models.RenderSpec{
		VideoID:    v.ID,
		AudioURL:   v.AudioURL,
		TemplateID: v.TemplateID,
		Script:     v.Script,
	}
	if spec.TemplateID == 0 {
		spec.TemplateID = 1
	}

	if len(v.CaptionsData) > 0 && string(v.CaptionsData) != "null" {
		if err := json.Unmarshal(v.CaptionsData, &spec.Captions); err != nil {
			return models.RenderSpec{}, fmt.Errorf("decode captions_data for %s: %w", videoID, err)
		}
	}

	if v.QuestionID == "" {
		return spec, nil
	}

	var q Question
	err = r.db.WithContext(ctx).Where("id = ?", v.QuestionID).First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.log.Warn(ctx, "Question %s for video %s not found", v.QuestionID, videoID)
		return spec, nil
	}
	if err != nil {
		return models.RenderSpec{}, fmt.Errorf("get question %s: %w", v.QuestionID, err)
	}

	spec.Question = &models.Question{
		Statement: q.QuestionStatement,
		Answer:    q.Answer,
	}
	if q.Options != nil {
		spec.Question.Options = decodeOptions(*q.Options)
	}
	if q.Solution != nil {
		spec.Question.Solution = *q.Solution
	}
	return spec, nil
}

// UpdateStatus sets the status and, when non-nil, the video URL.
func (r *videoRepo) UpdateStatus(ctx context.Context, videoID, status string, videoURL *string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if videoURL != nil {
		updates["video_url"] = *videoURL
	}

	res := r.db.WithContext(ctx).
		Model(&Video{}).
		Where("id = ?", videoID).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update video %s status: %w", videoID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, videoID)
	}
	return nil
}

// decodeOptions accepts the options column as plain text or as a JSON list.
func decodeOptions(raw string) models.Options {
	if strings.HasPrefix(strings.TrimSpace(raw), "[") {
		var opts models.Options
		if err := json.Unmarshal([]byte(raw), &opts); err == nil {
			return opts
		}
	}
	return models.Options(raw)
}
