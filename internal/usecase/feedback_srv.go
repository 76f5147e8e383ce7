package usecase

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type FeedbackService interface {
	// SubmitFeedback accepts anonymous callers; identity may be nil.
	SubmitFeedback(ctx context.Context, identity *utils.Identity, req *request.SubmitFeedbackRequest) (*response.FeedbackResponse, error)
	ListFeedback(ctx context.Context) ([]response.FeedbackResponse, error)
	SubmitSupportTicket(ctx context.Context, req *request.SupportTicketRequest) (*response.SupportTicketResponse, error)
}

type feedbackService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFeedbackService(repo *repository.Repository, log *zap.Logger) FeedbackService {
	return &feedbackService{
		repo: repo,
		log:  log.With(zap.String("service", "feedback")),
	}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, identity *utils.Identity, req *request.SubmitFeedbackRequest) (*response.FeedbackResponse, error) {
	req.Comment = strings.TrimSpace(req.Comment)
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit feedback validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	feedback := &entity.Feedback{
		UserName: entity.AnonymousName,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Category: entity.FeedbackCategory(req.Category),
	}
	if identity != nil {
		feedback.UserID = &identity.UserID
		if name := displayName(identity.Name, identity.Email); name != "" {
			feedback.UserName = name
		}
	}

	if err := s.repo.Feedback.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("submit feedback: %w", err)
	}

	s.log.Info("Feedback submitted",
		zap.Int64("feedback_id", feedback.ID),
		zap.String("category", req.Category),
		zap.Int("rating", req.Rating),
	)

	resp := response.FeedbackToResponse(feedback)
	return &resp, nil
}

func (s *feedbackService) ListFeedback(ctx context.Context) ([]response.FeedbackResponse, error) {
	items, err := s.repo.Feedback.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	out := make([]response.FeedbackResponse, len(items))
	for i, f := range items {
		out[i] = response.FeedbackToResponse(f)
	}
	return out, nil
}

func (s *feedbackService) SubmitSupportTicket(ctx context.Context, req *request.SupportTicketRequest) (*response.SupportTicketResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Message = strings.TrimSpace(req.Message)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Support ticket validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	ticket := &entity.SupportTicket{
		Username: req.Username,
		Message:  req.Message,
	}

	if err := s.repo.Support.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("submit support ticket: %w", err)
	}

	s.log.Info("Support ticket submitted",
		zap.Int64("ticket_id", ticket.ID),
		zap.String("username", ticket.Username))

	return &response.SupportTicketResponse{TicketID: ticket.ID}, nil
}
