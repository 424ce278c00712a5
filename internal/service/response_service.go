package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"formcraft/internal/model"
	"formcraft/internal/repository"
)

// ResponseService stores answer sets submitted for a form
type ResponseService struct {
	formSvc      *FormService
	responseRepo repository.ResponseRepo
	broadcaster  Broadcaster
	validate     *validator.Validate
	log          *slog.Logger
}

// NewResponseService creates a new response service
func NewResponseService(formSvc *FormService, responseRepo repository.ResponseRepo, log *slog.Logger) *ResponseService {
	return &ResponseService{
		formSvc:      formSvc,
		responseRepo: responseRepo,
		broadcaster:  nopBroadcaster{},
		validate:     newValidator(),
		log:          log.With("component", "response_service"),
	}
}

// SetBroadcaster sets the live event broadcaster
func (s *ResponseService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit records the answers for formID. Answers are stored as sent;
// their content is not checked against the questions.
func (s *ResponseService) Submit(ctx context.Context, formID string, req *model.SubmitResponseRequest) (*model.Response, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}
	if _, err := s.formSvc.GetByID(ctx, formID); err != nil {
		return nil, err
	}

	resp := &model.Response{
		FormID:  formID,
		Answers: req.Answers,
	}
	if err := s.responseRepo.Create(ctx, resp); err != nil {
		return nil, fmt.Errorf("store response for form %s: %w", formID, err)
	}

	total, err := s.responseRepo.CountByFormID(ctx, formID)
	if err != nil {
		s.log.WarnContext(ctx, "failed to count responses", "formId", formID, "error", err)
		total = 0
	}

	s.log.InfoContext(ctx, "response submitted", "formId", formID, "responseId", resp.ID, "answers", len(resp.Answers), "total", total)
	s.broadcaster.BroadcastToForm(formID, string(model.EventResponseSubmitted), model.ResponseSubmittedPayload{
		FormID:        formID,
		ResponseID:    resp.ID,
		AnswerCount:   len(resp.Answers),
		ResponseCount: total,
		SubmittedAt:   resp.SubmittedAt,
	})
	return resp, nil
}

// List returns the responses collected for formID
func (s *ResponseService) List(ctx context.Context, formID string) ([]*model.Response, error) {
	if _, err := s.formSvc.GetByID(ctx, formID); err != nil {
		return nil, err
	}
	responses, err := s.responseRepo.GetByFormID(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("list responses for form %s: %w", formID, err)
	}
	return responses, nil
}
