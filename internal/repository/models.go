package repository

import (
	"time"

	"gorm.io/datatypes"
)

// Video is a row of the videos table.
type Video struct {
	ID           string         `gorm:"column:id;primaryKey"`
	CourseID     *int           `gorm:"column:course_id"`
	QuestionID   string         `gorm:"column:question_id"`
	Script       string         `gorm:"column:script"`
	AudioURL     string         `gorm:"column:audio_url"`
	CaptionsData datatypes.JSON `gorm:"column:captions_data"`
	VideoURL     *string        `gorm:"column:video_url"`
	TemplateID   int            `gorm:"column:template_id;default:1"`
	Status       string         `gorm:"column:status;index"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
}

func (Video) TableName() string { return "videos" }

// Question is a row of the new_questions table.
type Question struct {
	ID                string  `gorm:"column:id;primaryKey"`
	TopicID           int     `gorm:"column:topic_id"`
	QuestionStatement string  `gorm:"column:question_statement"`
	QuestionType      string  `gorm:"column:question_type"`
	Options           *string `gorm:"column:options"`
	Answer            string  `gorm:"column:answer"`
	Solution          *string `gorm:"column:solution"`
	UsedInVideo       *string `gorm:"column:used_in_video"`
}

func (Question) TableName() string { return "new_questions" }
