package meta

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/jbapex/planeje-sub002/internal/domain"
	"github.com/jbapex/planeje-sub002/pkg/throttle"
	"github.com/jbapex/planeje-sub002/pkg/utils"
	"github.com/sirupsen/logrus"
)

const defaultInsightFields = "impressions,reach,frequency,clicks,spend,ctr,cpc,cpm,actions,cost_per_action_type"

// insightParams monta fields e período; sem datePreset nem datas, usa os últimos DefaultDays dias
func (s *MetaIntegrator) insightParams(filters *domain.InsightFilters) url.Values {
	if filters == nil {
		filters = &domain.InsightFilters{}
	}

	params := url.Values{}

	fields := defaultInsightFields
	if len(filters.Fields) > 0 {
		fields = strings.Join(filters.Fields, ",")
	}
	params.Set("fields", fields)

	if filters.DatePreset != "" {
		params.Set("date_preset", filters.DatePreset)
	} else {
		since, until := utils.LastDays(s.now(), s.cfg.Insights.DefaultDays)
		if filters.StartDate != nil {
			since = *filters.StartDate
		}
		if filters.EndDate != nil {
			until = *filters.EndDate
		}
		params.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`, utils.FormatDate(&since), utils.FormatDate(&until)))
	}

	if filters.Level != "" {
		params.Set("level", filters.Level)
	}
	if filters.TimeIncrement != "" {
		params.Set("time_increment", filters.TimeIncrement)
	}

	return params
}

func (s *MetaIntegrator) GetInsights(ctx context.Context, objectID string, filters *domain.InsightFilters) ([]metadomain.RawMessage, error) {
	edge, err := s.Client.GetInsightsByObjectID(ctx, objectID, s.insightParams(filters))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id": objectID,
			"error":     err.Error(),
		}).Error("meta: failed to get insights")
		return []metadomain.RawMessage{}, err
	}

	if edge.Data == nil {
		return []metadomain.RawMessage{}, nil
	}

	return edge.Data, nil
}

// fetchInsights devolve o campo insights do recurso: os dados, ou o erro embutido
func (s *MetaIntegrator) fetchInsights(ctx context.Context, objectID string, params url.Values) (*metadomain.InsightsEdge, error) {
	edge, err := s.Client.GetInsightsByObjectID(ctx, objectID, params)
	if err != nil {
		return nil, err
	}
	if edge.Data == nil {
		edge.Data = []metadomain.RawMessage{}
	}
	return edge, nil
}

func insightsOrError(res throttle.Result[*metadomain.InsightsEdge]) *metadomain.InsightsEdge {
	if res.Err != nil {
		return &metadomain.InsightsEdge{
			Data:  []metadomain.RawMessage{},
			Error: metadomain.InlineError(res.Err),
		}
	}
	return res.Value
}

func logInsightFailures(kind string, ids []string, results []throttle.Result[*metadomain.InsightsEdge]) {
	for i, res := range results {
		if res.Err == nil {
			continue
		}
		logrus.WithFields(logrus.Fields{
			kind:         ids[i],
			"rate_limit": metadomain.IsRateLimitError(res.Err),
			"error":      res.Err.Error(),
		}).Warn("meta: failed to get insights for resource")
	}
}

// GetCampaigns lista as campanhas da conta e busca os insights de todas em paralelo
func (s *MetaIntegrator) GetCampaigns(ctx context.Context, accountID string, filters *domain.InsightFilters) ([]metadomain.Campaign, error) {
	campaigns, err := s.Client.GetCampaignsByAccountID(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: failed to get campaigns for ad account")
		return []metadomain.Campaign{}, err
	}

	params := s.insightParams(filters)
	ids := make([]string, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
	}

	results := throttle.Map(ctx, ids, throttle.Options{}, func(ctx context.Context, id string) (*metadomain.InsightsEdge, error) {
		return s.fetchInsights(ctx, id, params)
	})
	logInsightFailures("campaign_id", ids, results)

	for i := range campaigns {
		campaigns[i].Insights = insightsOrError(results[i])
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"campaigns":  len(campaigns),
	}).Debug("meta: campaigns retrieved")

	return campaigns, nil
}

// serialOptions é a política de fan-out de conjuntos e anúncios: um por vez, com intervalo fixo
func (s *MetaIntegrator) serialOptions() throttle.Options {
	return throttle.Options{
		Concurrency: 1,
		Delay:       s.cfg.Insights.Delay,
	}
}

// insightTargets são os primeiros MaxResources ids que recebem insights
func (s *MetaIntegrator) insightTargets(ids []string) []string {
	if len(ids) > s.cfg.Insights.MaxResources {
		return ids[:s.cfg.Insights.MaxResources]
	}
	return ids
}

// GetAdSets lista os conjuntos de uma campanha ou conta. Os insights são buscados em série,
// só para os primeiros MaxResources; falhas (inclusive rate limit) ficam em insights.error.
func (s *MetaIntegrator) GetAdSets(ctx context.Context, parentID string, filters *domain.InsightFilters) ([]metadomain.AdSet, error) {
	adSets, err := s.Client.GetAdSetsByParentID(ctx, parentID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"parent_id": parentID,
			"error":     err.Error(),
		}).Error("meta: failed to get ad sets")
		return []metadomain.AdSet{}, err
	}

	ids := make([]string, len(adSets))
	for i, a := range adSets {
		ids[i] = a.ID
	}
	targets := s.insightTargets(ids)

	params := s.insightParams(filters)
	results := throttle.Map(ctx, targets, s.serialOptions(), func(ctx context.Context, id string) (*metadomain.InsightsEdge, error) {
		return s.fetchInsights(ctx, id, params)
	})
	logInsightFailures("adset_id", targets, results)

	for i := range results {
		adSets[i].Insights = insightsOrError(results[i])
	}

	return adSets, nil
}

// GetAds segue a mesma política de GetAdSets
func (s *MetaIntegrator) GetAds(ctx context.Context, parentID string, filters *domain.InsightFilters) ([]metadomain.Ad, error) {
	ads, err := s.Client.GetAdsByParentID(ctx, parentID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"parent_id": parentID,
			"error":     err.Error(),
		}).Error("meta: failed to get ads")
		return []metadomain.Ad{}, err
	}

	ids := make([]string, len(ads))
	for i, a := range ads {
		ids[i] = a.ID
	}
	targets := s.insightTargets(ids)

	params := s.insightParams(filters)
	results := throttle.Map(ctx, targets, s.serialOptions(), func(ctx context.Context, id string) (*metadomain.InsightsEdge, error) {
		return s.fetchInsights(ctx, id, params)
	})
	logInsightFailures("ad_id", targets, results)

	for i := range results {
		ads[i].Insights = insightsOrError(results[i])
	}

	return ads, nil
}

// GetAdByID busca o anúncio e, sem obrigatoriedade, o nome da conta dona da campanha
func (s *MetaIntegrator) GetAdByID(ctx context.Context, adID string) (*metadomain.AdSummary, *string, error) {
	ad, err := s.Client.GetAdByID(ctx, adID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Error("meta: failed to get ad")
		return nil, nil, err
	}

	summary := &metadomain.AdSummary{
		ID:   ad.ID,
		Name: ad.Name,
	}
	if ad.Campaign != nil {
		summary.Campaign = &metadomain.NamedRef{Name: ad.Campaign.Name}
	}
	if ad.AdSet != nil {
		summary.AdSet = &metadomain.NamedRef{Name: ad.AdSet.Name}
	}
	if ad.Creative != nil && ad.Creative.ThumbnailURL != "" {
		thumbnail := ad.Creative.ThumbnailURL
		summary.ThumbnailURL = &thumbnail
	}

	if ad.Campaign == nil || ad.Campaign.AccountID == "" {
		return summary, nil, nil
	}

	name, err := s.Client.GetAdAccountName(ctx, ad.Campaign.AccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id":      adID,
			"account_id": ad.Campaign.AccountID,
			"error":      err.Error(),
		}).Warn("meta: failed to get ad account name")
		return summary, nil, nil
	}

	return summary, &name, nil
}
