package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"formcraft/internal/cache"
	"formcraft/internal/model"
	"formcraft/internal/repository"
)

const defaultListLimit = 100

// FormService handles form creation and lookup
type FormService struct {
	formRepo  repository.FormRepo
	formCache cache.FormCache
	validate  *validator.Validate
	log       *slog.Logger
}

// NewFormService creates a new form service. A nil cache disables caching.
func NewFormService(formRepo repository.FormRepo, formCache cache.FormCache, log *slog.Logger) *FormService {
	if formCache == nil {
		formCache = cache.NopFormCache{}
	}
	return &FormService{
		formRepo:  formRepo,
		formCache: formCache,
		validate:  newValidator(),
		log:       log.With("component", "form_service"),
	}
}

// Create stores a new form. Only the document structure is checked:
// every question needs a unique clientId and a known type.
func (s *FormService) Create(ctx context.Context, req *model.CreateFormRequest) (*model.Form, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}
	if err := checkUniqueClientIDs(req.Questions); err != nil {
		return nil, err
	}

	form := &model.Form{
		Title:       req.Title,
		HeaderImage: req.HeaderImage,
		Questions:   normalizeQuestions(req.Questions),
	}

	id, err := s.formRepo.Create(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}
	form.ID = id

	if err := s.formCache.Set(ctx, form); err != nil {
		s.log.WarnContext(ctx, "failed to cache new form", "formId", id, "error", err)
	}
	s.log.InfoContext(ctx, "form created", "formId", id, "questions", len(form.Questions))
	return form, nil
}

// GetByID returns ErrFormNotFound for unknown or malformed ids
func (s *FormService) GetByID(ctx context.Context, id string) (*model.Form, error) {
	form, err := s.formCache.Get(ctx, id)
	if err != nil {
		s.log.WarnContext(ctx, "form cache read failed", "formId", id, "error", err)
	}
	if form != nil {
		return form, nil
	}

	form, err = s.formRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get form %s: %w", id, err)
	}
	if form == nil {
		return nil, ErrFormNotFound
	}

	if err := s.formCache.Set(ctx, form); err != nil {
		s.log.WarnContext(ctx, "failed to cache form", "formId", id, "error", err)
	}
	return form, nil
}

// List returns recent forms, newest first
func (s *FormService) List(ctx context.Context) ([]*model.Form, error) {
	forms, err := s.formRepo.List(ctx, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return forms, nil
}

func checkUniqueClientIDs(questions []model.Question) error {
	seen := make(map[string]int, len(questions))
	for i, q := range questions {
		if prev, ok := seen[q.ClientID]; ok {
			return newFieldError(
				fmt.Sprintf("questions[%d].clientId", i),
				"unique",
				fmt.Sprintf("duplicates questions[%d].clientId", prev),
			)
		}
		seen[q.ClientID] = i
	}
	return nil
}

// normalizeQuestions keeps only the fields that belong to each question type
func normalizeQuestions(in []model.Question) []model.Question {
	out := make([]model.Question, 0, len(in))
	for _, q := range in {
		nq := model.Question{
			ClientID: q.ClientID,
			Type:     q.Type,
			Title:    q.Title,
			Image:    q.Image,
			Options:  []model.Option{},
		}
		switch q.Type {
		case model.QuestionTypeCategorize:
			if q.Options != nil {
				nq.Options = append(nq.Options, q.Options...)
			}
		case model.QuestionTypeCloze:
			nq.ClozeText = q.ClozeText
		case model.QuestionTypeComprehension:
			nq.ComprehensionPassage = q.ComprehensionPassage
		}
		out = append(out, nq)
	}
	return out
}
