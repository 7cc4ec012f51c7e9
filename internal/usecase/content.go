package usecase

import (
	"context"
	"errors"
	"fmt"

	"cavaltron-backend/internal/domain"
	"cavaltron-backend/pkg/icon"

	"golang.org/x/sync/errgroup"
)

// Shown when a known section has no row or an empty column
var sectionDefaults = map[string]domain.SectionView{
	domain.SectionHero: {
		Section: domain.SectionHero,
		Title:   "CAVALTRON - Engenharia que impulsiona o amanhã",
		Content: "Soluções completas em eletrônica e automação para sua indústria",
		CTAText: "Fale Conosco",
	},
	domain.SectionAbout: {
		Section: domain.SectionAbout,
		Title:   "| Sobre mim:",
		Content: "Sou Engenheiro Eletricista especializado em análise de defeitos eletrônicos, retrofit de equipamentos industriais, projetos de Indústria 4.0, desenvolvimento de projetos eletrônicos customizados e automação industrial completa.",
	},
}

// Contact cards that are not emails show this instead of the raw link
const contactLinkPrompt = "Clique para acessar"

type contentUsecase struct {
	repo domain.ContentRepository
}

func NewContentUsecase(repo domain.ContentRepository) domain.ContentUsecase {
	return &contentUsecase{repo: repo}
}

// GetSection returns a section with defaults applied. A missing row of a
// known section is not an error; a missing row of an unknown one is.
func (u *contentUsecase) GetSection(ctx context.Context, section string) (*domain.SectionView, error) {
	row, err := u.repo.GetSection(ctx, section)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to load section %q: %w", section, err)
	}

	def, known := sectionDefaults[section]
	if row == nil && !known {
		return nil, domain.ErrNotFound
	}

	view := domain.SectionView{Section: section}
	if row != nil {
		view.Title = deref(row.Title)
		view.Content = deref(row.Content)
		view.CTAText = deref(row.CTAText)
	}
	view.Title = orDefault(view.Title, def.Title)
	view.Content = orDefault(view.Content, def.Content)
	view.CTAText = orDefault(view.CTAText, def.CTAText)
	return &view, nil
}

func (u *contentUsecase) ListContactChannels(ctx context.Context) ([]domain.ContactChannelView, error) {
	rows, err := u.repo.ListContactInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact info: %w", err)
	}

	views := make([]domain.ContactChannelView, 0, len(rows))
	for _, r := range rows {
		v := domain.ContactChannelView{
			ID:    r.ID,
			Icon:  icon.ForContact(deref(r.Icon)),
			Label: deref(r.Label),
			Value: deref(r.Value),
			Type:  deref(r.Type),
		}
		if v.Type == "email" {
			v.Display = v.Value
		} else {
			v.Display = contactLinkPrompt
		}
		views = append(views, v)
	}
	return views, nil
}

func (u *contentUsecase) ListSkills(ctx context.Context) ([]domain.SkillView, error) {
	rows, err := u.repo.ListSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}

	views := make([]domain.SkillView, 0, len(rows))
	for _, r := range rows {
		views = append(views, domain.SkillView{
			ID:           r.ID,
			Icon:         icon.ForSkill(deref(r.Icon)),
			Title:        deref(r.Title),
			Description:  deref(r.Description),
			DisplayOrder: r.DisplayOrder,
		})
	}
	return views, nil
}

func (u *contentUsecase) ListProjects(ctx context.Context) ([]domain.ProjectView, error) {
	rows, err := u.repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	views := make([]domain.ProjectView, 0, len(rows))
	for _, r := range rows {
		v := domain.ProjectView{
			ID:           r.ID,
			Title:        deref(r.Title),
			Description:  deref(r.Description),
			ImageURL:     deref(r.ImageURL),
			ExternalLink: deref(r.ExternalLink),
			IframeURL:    deref(r.IframeURL),
			DisplayOrder: r.DisplayOrder,
		}
		v.ActionURL = orDefault(v.IframeURL, v.ExternalLink)
		views = append(views, v)
	}
	return views, nil
}

// GetPage loads every section concurrently. Any store error fails the page.
func (u *contentUsecase) GetPage(ctx context.Context) (*domain.Page, error) {
	var page domain.Page
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := u.GetSection(gctx, domain.SectionHero)
		if err == nil {
			page.Hero = *v
		}
		return err
	})
	g.Go(func() error {
		v, err := u.GetSection(gctx, domain.SectionAbout)
		if err == nil {
			page.About = *v
		}
		return err
	})
	g.Go(func() (err error) {
		page.Skills, err = u.ListSkills(gctx)
		return err
	})
	g.Go(func() (err error) {
		page.Projects, err = u.ListProjects(gctx)
		return err
	})
	g.Go(func() (err error) {
		page.Contact, err = u.ListContactChannels(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
