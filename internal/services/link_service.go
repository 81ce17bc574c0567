// Package services contains the business logic layer for the link board application
package services

import (
	"context"

	"go.uber.org/zap"

	customerrors "github.com/axellelanca/linkboard/internal/errors"
	"github.com/axellelanca/linkboard/internal/models"
	"github.com/axellelanca/linkboard/internal/repository"
	"github.com/axellelanca/linkboard/internal/validation"
)

// MaxFieldLength is the column size shared by title, url and description.
const MaxFieldLength = 255

// RedirectTarget is where a client is sent after a successful submission.
const RedirectTarget = "/"

// Form field names, as posted by the submission form.
const (
	FieldTitle       = "title"
	FieldURL         = "url"
	FieldDescription = "description"
)

var linkFields = []validation.Field{
	{Name: FieldTitle, Rules: []validation.Rule{validation.Required(), validation.MaxLen(MaxFieldLength)}},
	{Name: FieldURL, Rules: []validation.Rule{validation.Required(), validation.AbsoluteURL(), validation.MaxLen(MaxFieldLength)}},
	{Name: FieldDescription, Rules: []validation.Rule{validation.Required(), validation.MaxLen(MaxFieldLength)}},
}

// Submission is an untrusted link submission. Empty strings mean the field was absent.
type Submission struct {
	Title       string `form:"title" json:"title"`
	URL         string `form:"url" json:"url"`
	Description string `form:"description" json:"description"`
}

func (s Submission) values() map[string]string {
	return map[string]string{
		FieldTitle:       s.Title,
		FieldURL:         s.URL,
		FieldDescription: s.Description,
	}
}

// Result is the outcome of Submit: either a created link with its redirect
// target, or a non-empty set of field errors.
type Result struct {
	Link     *models.Link
	Redirect string
	Errors   validation.Errors
}

// Rejected reports whether the submission failed validation.
func (r Result) Rejected() bool {
	return len(r.Errors) > 0
}

// LinkService provides business logic methods for submitted links.
// It sits between the HTTP handlers / CLI and the data repository.
type LinkService struct {
	linkRepo  repository.LinkRepository
	validator *validation.Validator
	logger    *zap.Logger
}

// NewLinkService creates and returns a new instance of LinkService.
func NewLinkService(linkRepo repository.LinkRepository, logger *zap.Logger) *LinkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LinkService{
		linkRepo:  linkRepo,
		validator: validation.New(),
		logger:    logger,
	}
}

// Submit validates sub and, only when every field passes, stores it as a new link.
// A rejected submission is reported through Result, not the error; the error
// is reserved for storage failures.
func (s *LinkService) Submit(ctx context.Context, sub Submission) (Result, error) {
	if errs := s.validator.Check(linkFields, sub.values()); len(errs) > 0 {
		s.logger.Debug("link submission rejected", zap.Strings("fields", errs.Fields()))
		return Result{Errors: errs}, nil
	}

	link := &models.Link{
		Title:       sub.Title,
		URL:         sub.URL,
		Description: sub.Description,
	}
	if err := s.linkRepo.CreateLink(ctx, link); err != nil {
		return Result{}, customerrors.ErrLinkPersistFailed{Title: sub.Title, Reason: err}
	}

	s.logger.Info("link submitted", zap.Uint("id", link.ID), zap.String("url", link.URL))
	return Result{Link: link, Redirect: RedirectTarget}, nil
}

// ListLinks returns the stored links, newest first.
func (s *LinkService) ListLinks(ctx context.Context) ([]models.Link, error) {
	return s.linkRepo.ListLinks(ctx)
}

// GetLink returns customerrors.ErrLinkNotFound when id is unknown.
func (s *LinkService) GetLink(ctx context.Context, id uint) (*models.Link, error) {
	return s.linkRepo.GetLinkByID(ctx, id)
}

func (s *LinkService) CountLinks(ctx context.Context) (int64, error) {
	return s.linkRepo.CountLinks(ctx)
}
