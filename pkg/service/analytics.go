package service

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/repo"
	"wasel/ms-delivery-management/pkg/utils"
)

// AnalyticsService derives the dashboard KPIs from the order set. Everything is
// computed read-side, there are no materialized aggregates to keep in sync.
type AnalyticsService struct {
	repo repo.PGInterface
}

type AnalyticsServiceInterface interface {
	GetDriverStats(ctx context.Context, req model.AnalyticsParam) ([]model.DriverStats, error)
	GetProfitByDate(ctx context.Context, req model.AnalyticsParam) ([]model.ProfitByDate, error)
	GetCashCollection(ctx context.Context, req model.AnalyticsParam) (model.CashCollection, error)
}

func NewAnalyticsService(repo repo.PGInterface) AnalyticsServiceInterface {
	return &AnalyticsService{repo: repo}
}

// load fetches the filtered order set and the status vocabulary concurrently
// and builds the classification index once per request.
func (s *AnalyticsService) load(ctx context.Context, req model.AnalyticsParam) ([]model.Order, *utils.StatusIndex, error) {
	var (
		orders   []model.Order
		statuses []model.Status
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		orders, err = s.repo.GetOrdersForAnalytics(egCtx, req, nil)
		return err
	})
	eg.Go(func() (err error) {
		statuses, err = s.repo.GetListStatus(egCtx, nil)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	return orders, utils.BuildStatusIndex(statuses), nil
}

func (s *AnalyticsService) GetDriverStats(ctx context.Context, req model.AnalyticsParam) ([]model.DriverStats, error) {
	orders, idx, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}

	byDriver := make(map[string]*model.DriverStats)
	for _, o := range orders {
		if o.Driver == "" {
			continue
		}
		st, ok := byDriver[o.Driver]
		if !ok {
			st = &model.DriverStats{Driver: o.Driver}
			byDriver[o.Driver] = st
		}
		st.Total++
		switch idx.Classify(o.Status) {
		case utils.STATUS_KIND_DELIVERED:
			st.Delivered++
		case utils.STATUS_KIND_POSTPONED:
			st.Postponed++
		case utils.STATUS_KIND_RETURNED:
			st.Returned++
		}
	}

	rs := make([]model.DriverStats, 0, len(byDriver))
	for _, st := range byDriver {
		if st.Total > 0 {
			st.SuccessRate = utils.RoundAmount(float64(st.Delivered) / float64(st.Total))
		}
		rs = append(rs, *st)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Driver < rs[j].Driver })

	return rs, nil
}

func (s *AnalyticsService) GetProfitByDate(ctx context.Context, req model.AnalyticsParam) ([]model.ProfitByDate, error) {
	orders, idx, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]float64)
	for _, o := range orders {
		if idx.Classify(o.Status) != utils.STATUS_KIND_DELIVERED {
			continue
		}
		day := time.Time(o.Date).Format(utils.DATE_FORMAT)
		byDate[day] += o.DeliveryFee + o.AdditionalCost - o.DriverFee - o.DriverAdditionalFare
	}

	rs := make([]model.ProfitByDate, 0, len(byDate))
	for day, profit := range byDate {
		rs = append(rs, model.ProfitByDate{Date: day, Profit: utils.RoundAmount(profit)})
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Date < rs[j].Date })

	return rs, nil
}

func (s *AnalyticsService) GetCashCollection(ctx context.Context, req model.AnalyticsParam) (model.CashCollection, error) {
	orders, idx, err := s.load(ctx, req)
	if err != nil {
		return model.CashCollection{}, err
	}

	rs := model.CashCollection{}
	for _, o := range orders {
		switch idx.Classify(o.Status) {
		case utils.STATUS_KIND_DELIVERED:
			rs.Outstanding += o.Cod
		case utils.STATUS_KIND_COLLECTED:
			rs.Collected += o.Cod
		}
	}

	rs.Outstanding = utils.RoundAmount(rs.Outstanding)
	rs.Collected = utils.RoundAmount(rs.Collected)
	if total := rs.Outstanding + rs.Collected; total > 0 {
		rs.CollectionRate = utils.RoundAmount(rs.Collected / total)
	}

	return rs, nil
}
