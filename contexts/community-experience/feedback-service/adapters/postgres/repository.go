package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"maxhelp/contexts/community-experience/feedback-service/domain/entities"
	domainerrors "maxhelp/contexts/community-experience/feedback-service/domain/errors"
	"maxhelp/contexts/community-experience/feedback-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// AutoMigrate creates the feedbacks table when absent.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&feedbackModel{})
}

func (r *Repository) FindUnitByName(ctx context.Context, name string) (ports.Unit, error) {
	var row struct {
		ID   int
		Name string
	}
	err := r.db.WithContext(ctx).Table("business_units").Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Unit{}, domainerrors.ErrUnitNotFound
		}
		return ports.Unit{}, err
	}
	return ports.Unit{ID: row.ID, Name: row.Name}, nil
}

func (r *Repository) CreateFeedback(ctx context.Context, feedback entities.Feedback) (entities.Feedback, error) {
	row := feedbackModelFrom(feedback)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Feedback{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAllFeedback(ctx context.Context) ([]entities.Feedback, error) {
	var rows []feedbackModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return feedbackFrom(rows), nil
}

func (r *Repository) ListFeedbackByUnit(ctx context.Context, unitID int) ([]entities.Feedback, error) {
	var rows []feedbackModel
	if err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("id").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return feedbackFrom(rows), nil
}

type feedbackModel struct {
	ID        int       `gorm:"column:id;primaryKey"`
	UserID    int       `gorm:"column:user_id;index;not null"`
	UnitID    int       `gorm:"column:unit_id;index;not null"`
	Comment   string    `gorm:"column:comment;size:500;not null"`
	Rating    *int      `gorm:"column:rating"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (feedbackModel) TableName() string { return "feedbacks" }

func feedbackModelFrom(feedback entities.Feedback) feedbackModel {
	return feedbackModel{
		ID:        feedback.ID,
		UserID:    feedback.UserID,
		UnitID:    feedback.UnitID,
		Comment:   feedback.Comment,
		Rating:    feedback.Rating,
		CreatedAt: feedback.CreatedAt,
	}
}

func (m feedbackModel) toEntity() entities.Feedback {
	return entities.Feedback{
		ID:        m.ID,
		UserID:    m.UserID,
		UnitID:    m.UnitID,
		Comment:   m.Comment,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
	}
}

func feedbackFrom(rows []feedbackModel) []entities.Feedback {
	items := make([]entities.Feedback, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}
