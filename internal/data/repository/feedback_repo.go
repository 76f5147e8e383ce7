package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type FeedbackRepository interface {
	// Create inserts the row and reads back the stored values.
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindAll(ctx context.Context) ([]*entity.Feedback, error)
}

type feedbackRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFeedbackRepository(db database.PgxIface, log *zap.Logger) FeedbackRepository {
	return &feedbackRepository{
		db:  db,
		log: log.With(zap.String("repository", "feedback")),
	}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (user_id, user_name, rating, comment, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, user_name, rating, comment, category, created_at
	`

	err := r.db.QueryRow(ctx, query,
		feedback.UserID,
		feedback.UserName,
		feedback.Rating,
		feedback.Comment,
		feedback.Category,
	).Scan(
		&feedback.ID,
		&feedback.UserID,
		&feedback.UserName,
		&feedback.Rating,
		&feedback.Comment,
		&feedback.Category,
		&feedback.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create feedback",
			zap.Error(err),
			zap.String("user_name", feedback.UserName),
			zap.String("category", string(feedback.Category)),
		)
		return fmt.Errorf("create feedback: %w", err)
	}

	return nil
}

func (r *feedbackRepository) FindAll(ctx context.Context) ([]*entity.Feedback, error) {
	query := `
		SELECT id, user_id, user_name, rating, comment, category, created_at
		FROM feedback
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list feedback", zap.Error(err))
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Feedback, 0)
	for rows.Next() {
		var f entity.Feedback
		err := rows.Scan(
			&f.ID,
			&f.UserID,
			&f.UserName,
			&f.Rating,
			&f.Comment,
			&f.Category,
			&f.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan feedback row", zap.Error(err))
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		items = append(items, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback rows: %w", err)
	}

	return items, nil
}
