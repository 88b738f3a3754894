package orchestrator

import (
	"sort"
	"sync"

	"github.com/griffnb/core-httpgen/internal/domain"
	"github.com/griffnb/core-httpgen/internal/model"
	"golang.org/x/sync/errgroup"
)

type resolvedModel struct {
	index int
	model *domain.ModelDescriptor
}

// resolveModelsParallel resolves the named definitions concurrently and
// returns the models in the order of names. Definitions without properties
// produce no model.
func (s *Service) resolveModelsParallel(ctx *Context, names []string) ([]*domain.ModelDescriptor, error) {
	var (
		mu        sync.Mutex
		collected []resolvedModel
	)

	var g errgroup.Group
	g.SetLimit(s.config.Concurrency)

	for i, name := range names {
		i, name := i, name

		g.Go(func() error {
			definition, _ := ctx.Definition(name)
			m, err := model.Resolve(name, definition)
			if err != nil {
				return err
			}
			if m == nil {
				return nil
			}

			mu.Lock()
			collected = append(collected, resolvedModel{index: i, model: m})
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	models := make([]*domain.ModelDescriptor, 0, len(collected))
	for _, rm := range collected {
		models = append(models, rm.model)
	}
	return models, nil
}
