package repositories

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rohits-web03/fundbridge/internal/models"
	"gorm.io/gorm"
)

// ProjectFilter narrows a project listing. Zero values mean "no constraint";
// every set field is ANDed with the others.
type ProjectFilter struct {
	// Search matches a case-insensitive substring of the title or the description.
	Search string
	// Sector must equal the project's sector exactly.
	Sector    string
	MinAmount *float64
	MaxAmount *float64
}

func (f ProjectFilter) apply(q *gorm.DB) *gorm.DB {
	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		q = q.Where(`(LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\')`, pattern, pattern)
	}
	if f.Sector != "" {
		q = q.Where("sector = ?", f.Sector)
	}
	if f.MinAmount != nil {
		q = q.Where("target_amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("target_amount <= ?", *f.MaxAmount)
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ValidAmount reports whether v can be stored as a project's target amount.
func ValidAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (s *Store) CreateProject(ctx context.Context, p *models.Project) error {
	if !ValidAmount(p.TargetAmount) {
		return ErrInvalidAmount
	}
	return s.db.WithContext(ctx).Create(p).Error
}

// ListProjects returns the projects matching f in creation order.
func (s *Store) ListProjects(ctx context.Context, f ProjectFilter) ([]models.Project, error) {
	var projects []models.Project
	q := f.apply(s.db.WithContext(ctx).Model(&models.Project{}))
	if err := q.Order("created_at ASC").Order("id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) ListProjectsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").Order("id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// FindProject loads a project together with its owner.
func (s *Store) FindProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var p models.Project
	if err := s.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}
