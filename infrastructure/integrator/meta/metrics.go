package meta

import (
	"context"
	"net/url"
	"strings"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/jbapex/planeje-sub002/internal/domain"
	"github.com/jbapex/planeje-sub002/pkg/utils"
	"github.com/sirupsen/logrus"
)

type paramStyle int

const (
	// stylePeriod usa period (+ since/until)
	stylePeriod paramStyle = iota
	// styleTotalValue usa metric_type=total_value
	styleTotalValue
)

// metricShape é a forma de parâmetros que a Graph API aceita para uma métrica.
// Period, Timeframe e Breakdown vazios aceitam o valor da consulta.
type metricShape struct {
	Style     paramStyle
	Period    string
	DateRange bool
	Timeframe string
	Breakdown string
}

var (
	dailyPeriod     = metricShape{Style: stylePeriod, Period: "day", DateRange: true}
	dailyTotalValue = metricShape{Style: styleTotalValue, Period: "day", DateRange: true}
	demographics    = metricShape{Style: styleTotalValue, Period: "lifetime", Timeframe: "this_month", Breakdown: "age"}
	pageMetric      = metricShape{Style: stylePeriod, DateRange: true}
	pageLifetime    = metricShape{Style: stylePeriod, Period: "lifetime"}
)

// pageMetrics lista as métricas de página que não aceitam o período da consulta.
// As demais usam pageMetric.
var pageMetrics = map[string]metricShape{
	"page_fans":                   pageLifetime,
	"page_fans_city":              pageLifetime,
	"page_fans_country":           pageLifetime,
	"page_fans_locale":            pageLifetime,
	"page_fans_gender_age":        pageLifetime,
	"page_daily_follows":          dailyPeriod,
	"page_daily_follows_unique":   dailyPeriod,
	"page_daily_unfollows_unique": dailyPeriod,
}

var instagramMetrics = map[string]metricShape{
	"reach":                         dailyPeriod,
	"follower_count":                dailyPeriod,
	"profile_views":                 dailyTotalValue,
	"accounts_engaged":              dailyTotalValue,
	"total_interactions":            dailyTotalValue,
	"likes":                         dailyTotalValue,
	"comments":                      dailyTotalValue,
	"shares":                        dailyTotalValue,
	"saves":                         dailyTotalValue,
	"replies":                       dailyTotalValue,
	"website_clicks":                dailyTotalValue,
	"views":                         dailyTotalValue,
	"follower_demographics":         demographics,
	"engaged_audience_demographics": demographics,
	"reached_audience_demographics": demographics,
	"online_followers":              {Style: stylePeriod, Period: "lifetime"},
}

var (
	defaultInstagramMetrics = []string{"reach", "follower_count", "profile_views", "accounts_engaged", "total_interactions"}
	defaultPageMetrics      = []string{"page_impressions", "page_impressions_unique", "page_post_engagements", "page_views_total", "page_follows"}
)

func instagramShape(metric string) metricShape {
	if shape, ok := instagramMetrics[metric]; ok {
		return shape
	}
	return dailyTotalValue
}

func pageShape(metric string) metricShape {
	if shape, ok := pageMetrics[metric]; ok {
		return shape
	}
	return pageMetric
}

// metricGroup são métricas que compartilham exatamente os mesmos parâmetros
type metricGroup struct {
	params  url.Values
	metrics []string
}

// buildParams aplica a consulta sobre a forma da métrica
func (s *MetaIntegrator) buildParams(shape metricShape, query *domain.MetricQuery) url.Values {
	params := url.Values{}

	if shape.Style == styleTotalValue {
		params.Set("metric_type", "total_value")
	}

	period := shape.Period
	if period == "" {
		period = query.Period
	}
	if period == "" {
		period = "day"
	}
	params.Set("period", period)

	if shape.DateRange {
		since, until := utils.LastDays(s.now(), s.cfg.Insights.DefaultDays)
		if query.Since != nil {
			since = *query.Since
		}
		if query.Until != nil {
			until = *query.Until
		}
		params.Set("since", utils.FormatDate(&since))
		params.Set("until", utils.FormatDate(&until))
	}

	if shape.Timeframe != "" {
		timeframe := shape.Timeframe
		if query.Timeframe != "" {
			timeframe = query.Timeframe
		}
		params.Set("timeframe", timeframe)
	}

	if shape.Breakdown != "" {
		breakdown := shape.Breakdown
		if query.Breakdown != "" {
			breakdown = query.Breakdown
		}
		params.Set("breakdown", breakdown)
	}

	return params
}

// groupMetrics agrupa as métricas pela forma, na ordem em que aparecem
func (s *MetaIntegrator) groupMetrics(metrics []string, shapeOf func(string) metricShape, query *domain.MetricQuery) []*metricGroup {
	groups := make([]*metricGroup, 0)
	byKey := make(map[string]*metricGroup)
	seen := make(map[string]struct{})

	for _, metric := range metrics {
		metric = strings.TrimSpace(metric)
		if metric == "" {
			continue
		}
		if _, ok := seen[metric]; ok {
			continue
		}
		seen[metric] = struct{}{}

		params := s.buildParams(shapeOf(metric), query)
		key := params.Encode()

		group, ok := byKey[key]
		if !ok {
			group = &metricGroup{params: params}
			byKey[key] = group
			groups = append(groups, group)
		}
		group.metrics = append(group.metrics, metric)
	}

	return groups
}

// fetchMetrics faz uma chamada por grupo. Se o lote for rejeitado por métrica inválida,
// tenta cada métrica sozinha e fica com as que funcionarem.
// Só devolve erro quando nenhuma chamada deu certo.
func (s *MetaIntegrator) fetchMetrics(ctx context.Context, nodeID, accessToken string, groups []*metricGroup) ([]metadomain.RawMessage, error) {
	data := make([]metadomain.RawMessage, 0)
	succeeded := 0
	var firstErr error

	call := func(metrics []string, base url.Values) error {
		params := url.Values{}
		for k, v := range base {
			params[k] = v
		}
		params.Set("metric", strings.Join(metrics, ","))

		items, err := s.Client.GetNodeInsights(ctx, nodeID, params, accessToken)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return err
		}
		succeeded++
		data = append(data, items...)
		return nil
	}

	for _, group := range groups {
		err := call(group.metrics, group.params)
		if err == nil {
			continue
		}

		graphErr, isGraph := metadomain.AsGraphError(err)
		if !isGraph || !graphErr.IsInvalidMetric() || len(group.metrics) == 1 {
			logrus.WithFields(logrus.Fields{
				"node_id": nodeID,
				"metrics": strings.Join(group.metrics, ","),
				"error":   err.Error(),
			}).Warn("meta: failed to get metrics")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"node_id": nodeID,
			"metrics": strings.Join(group.metrics, ","),
		}).Info("meta: batch rejected by invalid metric, retrying one by one")

		for _, metric := range group.metrics {
			if err := call([]string{metric}, group.params); err != nil {
				logrus.WithFields(logrus.Fields{
					"node_id": nodeID,
					"metric":  metric,
					"error":   err.Error(),
				}).Warn("meta: metric rejected")
			}
		}
	}

	if succeeded == 0 && firstErr != nil {
		return []metadomain.RawMessage{}, firstErr
	}

	return data, nil
}

func (s *MetaIntegrator) GetPageInsights(ctx context.Context, pageID string, query *domain.MetricQuery) ([]metadomain.RawMessage, error) {
	if query == nil {
		query = &domain.MetricQuery{}
	}

	pageToken, err := s.Client.GetPageAccessToken(ctx, pageID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"page_id": pageID,
			"error":   err.Error(),
		}).Error("meta: failed to get page access token")
		return []metadomain.RawMessage{}, err
	}

	metrics := query.Metrics
	if len(metrics) == 0 {
		metrics = defaultPageMetrics
	}

	return s.fetchMetrics(ctx, pageID, pageToken, s.groupMetrics(metrics, pageShape, query))
}

func (s *MetaIntegrator) GetInstagramInsights(ctx context.Context, instagramAccountID string, query *domain.MetricQuery) ([]metadomain.RawMessage, error) {
	if query == nil {
		query = &domain.MetricQuery{}
	}

	metrics := query.Metrics
	if len(metrics) == 0 {
		metrics = defaultInstagramMetrics
	}

	return s.fetchMetrics(ctx, instagramAccountID, "", s.groupMetrics(metrics, instagramShape, query))
}
