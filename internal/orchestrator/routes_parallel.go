package orchestrator

import (
	"fmt"
	"sort"
	"sync"

	"github.com/griffnb/core-httpgen/internal/domain"
	"github.com/griffnb/core-httpgen/internal/parser/route"
	routedomain "github.com/griffnb/core-httpgen/internal/parser/route/domain"
	"golang.org/x/sync/errgroup"
)

// resolvedMethod pairs a method with its route's declaration index for
// deterministic ordering.
type resolvedMethod struct {
	index  int
	method *domain.MethodDescriptor
}

// resolveRoutesParallel resolves all routes concurrently using an errgroup
// bounded by the configured concurrency. Results are sorted by declaration
// index so the output does not depend on goroutine scheduling order.
// Skipped operations are left out.
func (s *Service) resolveRoutesParallel(resolver *route.Service, routes []*routedomain.Route) ([]*domain.MethodDescriptor, error) {
	var (
		mu        sync.Mutex
		collected []resolvedMethod
	)

	var g errgroup.Group
	g.SetLimit(s.config.Concurrency)

	for _, r := range routes {
		if r == nil {
			continue
		}

		// Capture loop variable for the goroutine closure.
		r := r

		g.Go(func() error {
			method, err := resolver.ResolveRoute(r)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", r, err)
			}
			if method == nil {
				return nil
			}

			mu.Lock()
			collected = append(collected, resolvedMethod{index: r.Index, method: method})
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

	methods := make([]*domain.MethodDescriptor, 0, len(collected))
	for _, rm := range collected {
		methods = append(methods, rm.method)
	}
	return methods, nil
}
