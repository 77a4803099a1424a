package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mhutchins/crewcal/internal/db"
	"github.com/mhutchins/crewcal/internal/domain"
	"github.com/mhutchins/crewcal/internal/repository"
	"github.com/mhutchins/crewcal/internal/scheduler"
)

// templateFile is the on-disk JSON shape of a phase template. Phases
// reference predecessors by key, which import resolves to generated item
// IDs. List position becomes sort order.
type templateFile struct {
	Name         string `json:"name"`
	BuildingType string `json:"buildingType"`
	Phases       []struct {
		Key          string `json:"key"`
		Name         string `json:"name"`
		DurationDays int    `json:"durationDays"`
		Color        string `json:"color"`
		Predecessor  string `json:"predecessor"`
		LagDays      int    `json:"lagDays"`
	} `json:"phases"`
}

type templateService struct {
	templates repository.TemplateRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewTemplateService(templates repository.TemplateRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TemplateService {
	return &templateService{
		templates: templates,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *templateService) ImportFile(ctx context.Context, path string) (template *domain.PhaseTemplate, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-template",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template file: %w", err)
	}

	var file templateFile
	if err = json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing template file: %w", err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if len(file.Phases) == 0 {
		return nil, fmt.Errorf("template %q has no phases", file.Name)
	}
	fields["template"] = file.Name
	fields["phase_count"] = len(file.Phases)

	tmpl := &domain.PhaseTemplate{
		ID:           uuid.New().String(),
		Name:         file.Name,
		BuildingType: file.BuildingType,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	// Resolve predecessor keys to generated item IDs.
	idByKey := make(map[string]string, len(file.Phases))
	for i, p := range file.Phases {
		if p.Key == "" {
			return nil, fmt.Errorf("phase %d (%q) has no key", i, p.Name)
		}
		if _, dup := idByKey[p.Key]; dup {
			return nil, fmt.Errorf("duplicate phase key %q", p.Key)
		}
		idByKey[p.Key] = uuid.New().String()
	}

	items := make([]domain.PhaseTemplateItem, 0, len(file.Phases))
	for i, p := range file.Phases {
		item := domain.PhaseTemplateItem{
			ID:                  idByKey[p.Key],
			TemplateID:          tmpl.ID,
			Name:                p.Name,
			DefaultDurationDays: p.DurationDays,
			DefaultColor:        p.Color,
			LagDays:             p.LagDays,
			SortOrder:           i,
		}
		if p.Predecessor != "" {
			predID, ok := idByKey[p.Predecessor]
			if !ok {
				return nil, fmt.Errorf("phase %q references unknown predecessor key %q", p.Name, p.Predecessor)
			}
			item.PredecessorItemID = &predID
		}
		items = append(items, item)
	}

	if err = scheduler.ValidateTemplate(items); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTemplates := repository.NewSQLiteTemplateRepo(tx)
		if err := txTemplates.Create(ctx, tmpl); err != nil {
			return err
		}
		for i := range items {
			if err := txTemplates.CreateItem(ctx, &items[i]); err != nil {
				return fmt.Errorf("creating item %q: %w", items[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tmpl, nil
}

func (s *templateService) List(ctx context.Context) ([]*domain.PhaseTemplate, error) {
	return s.templates.List(ctx)
}

func (s *templateService) GetByName(ctx context.Context, name string) (*domain.PhaseTemplate, []domain.PhaseTemplateItem, error) {
	tmpl, err := s.templates.GetByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	if err != nil {
		return nil, nil, err
	}
	items, err := s.templates.ListItems(ctx, tmpl.ID)
	if err != nil {
		return nil, nil, err
	}
	return tmpl, items, nil
}
