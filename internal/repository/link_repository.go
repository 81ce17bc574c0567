package repository

import (
	"context"
	"errors"
	"fmt"

	customerrors "github.com/axellelanca/linkboard/internal/errors"
	"github.com/axellelanca/linkboard/internal/models"
	"gorm.io/gorm"
)

// LinkRepository defines the data access methods for links.
type LinkRepository interface {
	CreateLink(ctx context.Context, link *models.Link) error
	ListLinks(ctx context.Context) ([]models.Link, error)
	GetLinkByID(ctx context.Context, id uint) (*models.Link, error)
	CountLinks(ctx context.Context) (int64, error)
}

// GormLinkRepository is the GORM implementation of LinkRepository.
type GormLinkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates and returns a new GormLinkRepository.
func NewLinkRepository(db *gorm.DB) *GormLinkRepository {
	return &GormLinkRepository{db: db}
}

// CreateLink inserts a single link row.
func (r *GormLinkRepository) CreateLink(ctx context.Context, link *models.Link) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

// ListLinks returns every link, newest first.
func (r *GormLinkRepository) ListLinks(ctx context.Context) ([]models.Link, error) {
	var links []models.Link
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve links: %w", err)
	}
	return links, nil
}

func (r *GormLinkRepository) GetLinkByID(ctx context.Context, id uint) (*models.Link, error) {
	var link models.Link
	if err := r.db.WithContext(ctx).First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerrors.ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to retrieve link %d: %w", id, err)
	}
	return &link, nil
}

func (r *GormLinkRepository) CountLinks(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Link{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return count, nil
}
