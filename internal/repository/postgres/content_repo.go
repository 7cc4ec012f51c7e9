package postgres

import (
	"context"
	"errors"

	"cavaltron-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgxpool.Pool the repository needs
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Querier = (*pgxpool.Pool)(nil)

type contentRepo struct {
	db Querier
}

// NewContentRepository creates a read-only repository over the content tables
func NewContentRepository(db Querier) domain.ContentRepository {
	return &contentRepo{db: db}
}

// GetSection retrieves the site_content row for a section
func (r *contentRepo) GetSection(ctx context.Context, section string) (*domain.SiteContent, error) {
	query := `
		SELECT section, title, content, cta_text
		FROM site_content
		WHERE section = $1
		LIMIT 1`

	var c domain.SiteContent
	err := r.db.QueryRow(ctx, query, section).Scan(&c.Section, &c.Title, &c.Content, &c.CTAText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListContactInfo retrieves every contact channel
func (r *contentRepo) ListContactInfo(ctx context.Context) ([]domain.ContactInfo, error) {
	query := `SELECT id::text, icon, label, value, type FROM contact_info`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.ContactInfo{}
	for rows.Next() {
		var c domain.ContactInfo
		if err := rows.Scan(&c.ID, &c.Icon, &c.Label, &c.Value, &c.Type); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// ListSkills retrieves skills in display order
func (r *contentRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	query := `
		SELECT id::text, icon, title, description, COALESCE(display_order, 0)
		FROM skills
		ORDER BY display_order ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Icon, &s.Title, &s.Description, &s.DisplayOrder); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// ListProjects retrieves projects in display order
func (r *contentRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT id::text, title, description, image_url, external_link, iframe_url,
		       COALESCE(display_order, 0)
		FROM projects
		ORDER BY display_order ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.ImageURL,
			&p.ExternalLink, &p.IframeURL, &p.DisplayOrder,
		); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
