package usecase

import (
	"context"
	"sync"

	"corpculture/internal/config"
	"corpculture/internal/usecase/interfaces"
)

// dashboardResources are the collections counted on the landing dashboard.
var dashboardResources = []string{
	"invoices",
	"quotations",
	"services",
	"rentals",
	"purchases",
	"companies",
	"products",
}

type DashboardSummary struct {
	Counts map[string]int64 `json:"counts"`
}

// IDashboardUseCase aggregates the per-resource totals shown on the landing
// page. The counts are independent, so they are fetched concurrently and
// combined after all settle; a failed count degrades to zero rather than
// failing the whole view.
type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	gateway interfaces.IRemoteGateway
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(gateway interfaces.IRemoteGateway) *DashboardUseCase {
	return &DashboardUseCase{gateway: gateway}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	counts := make(map[string]int64, len(dashboardResources))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, resource := range dashboardResources {
		wg.Add(1)
		go func(resource string) {
			defer wg.Done()
			count, err := u.gateway.Count(ctx, resource)
			if err != nil {
				config.LogError(config.GetLogger(), "dashboard", "Summary", "count fetch", map[string]any{"resource": resource}, err)
				count = 0
			}
			mu.Lock()
			counts[resource] = count
			mu.Unlock()
		}(resource)
	}
	wg.Wait()

	return DashboardSummary{Counts: counts}, nil
}
