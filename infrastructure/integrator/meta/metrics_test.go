package meta

import (
	"context"
	"errors"
	"net/url"
	"testing"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/jbapex/planeje-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func invalidMetricErr() error {
	return &metadomain.ErrorDetails{
		Message: "(#100) The value must be a valid insights metric",
		Type:    "OAuthException",
		Code:    100,
	}
}

func TestGroupMetrics_AgrupaPelaForma(t *testing.T) {
	s, _ := newTestIntegrator(t)

	groups := s.groupMetrics(
		[]string{"reach", "profile_views", "follower_count", "follower_demographics", "likes", "reach"},
		instagramShape,
		&domain.MetricQuery{},
	)

	require.Len(t, groups, 3)

	assert.Equal(t, []string{"reach", "follower_count"}, groups[0].metrics)
	assert.Equal(t, "day", groups[0].params.Get("period"))
	assert.Empty(t, groups[0].params.Get("metric_type"))
	assert.Equal(t, "2025-02-08", groups[0].params.Get("since"))

	assert.Equal(t, []string{"profile_views", "likes"}, groups[1].metrics)
	assert.Equal(t, "total_value", groups[1].params.Get("metric_type"))

	assert.Equal(t, []string{"follower_demographics"}, groups[2].metrics)
	assert.Equal(t, "lifetime", groups[2].params.Get("period"))
	assert.Equal(t, "this_month", groups[2].params.Get("timeframe"))
	assert.Equal(t, "age", groups[2].params.Get("breakdown"))
	assert.Empty(t, groups[2].params.Get("since"))
}

func TestGroupMetrics_ConsultaSobrescreveTimeframeEBreakdown(t *testing.T) {
	s, _ := newTestIntegrator(t)

	groups := s.groupMetrics(
		[]string{"engaged_audience_demographics", "reach"},
		instagramShape,
		&domain.MetricQuery{Timeframe: "last_30_days", Breakdown: "city", Period: "week"},
	)

	require.Len(t, groups, 2)
	assert.Equal(t, "last_30_days", groups[0].params.Get("timeframe"))
	assert.Equal(t, "city", groups[0].params.Get("breakdown"))
	// reach tem período fixo
	assert.Equal(t, "day", groups[1].params.Get("period"))
}

func TestGetInstagramInsights_FallbackPorMetrica(t *testing.T) {
	s, client := newTestIntegrator(t)
	ctx := context.Background()

	client.EXPECT().GetNodeInsights(ctx, "ig1", gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _ string, params url.Values, _ string) ([]metadomain.RawMessage, error) {
			switch params.Get("metric") {
			case "reach,follower_count":
				return nil, invalidMetricErr()
			case "reach":
				return []metadomain.RawMessage{metadomain.RawMessage(`{"name":"reach"}`)}, nil
			default:
				return nil, invalidMetricErr()
			}
		}).Times(3)

	data, err := s.GetInstagramInsights(ctx, "ig1", &domain.MetricQuery{Metrics: []string{"reach", "follower_count"}})
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.JSONEq(t, `{"name":"reach"}`, string(data[0]))
}

func TestGetInstagramInsights_TudoFalhaDevolveErro(t *testing.T) {
	s, client := newTestIntegrator(t)
	ctx := context.Background()

	client.EXPECT().GetNodeInsights(ctx, "ig1", gomock.Any(), "").Return(nil, errors.New("dial tcp: timeout"))

	data, err := s.GetInstagramInsights(ctx, "ig1", &domain.MetricQuery{Metrics: []string{"reach"}})
	require.Error(t, err)
	assert.Empty(t, data)
}

func TestGetPageInsights_UsaTokenDaPagina(t *testing.T) {
	s, client := newTestIntegrator(t)
	ctx := context.Background()

	client.EXPECT().GetPageAccessToken(ctx, "p1").Return("page-token", nil)
	client.EXPECT().GetNodeInsights(ctx, "p1", gomock.Any(), "page-token").
		DoAndReturn(func(_ context.Context, _ string, params url.Values, _ string) ([]metadomain.RawMessage, error) {
			assert.Equal(t, "page_impressions,page_post_engagements", params.Get("metric"))
			assert.Equal(t, "week", params.Get("period"))
			return []metadomain.RawMessage{metadomain.RawMessage(`{}`), metadomain.RawMessage(`{}`)}, nil
		})

	data, err := s.GetPageInsights(ctx, "p1", &domain.MetricQuery{
		Metrics: []string{"page_impressions", "page_post_engagements"},
		Period:  "week",
	})
	require.NoError(t, err)
	assert.Len(t, data, 2)
}

func TestGroupMetrics_PaginaSeparaMetricasVitalicias(t *testing.T) {
	s, _ := newTestIntegrator(t)

	groups := s.groupMetrics(
		[]string{"page_impressions", "page_fans", "page_daily_follows", "page_post_engagements", "page_fans_country"},
		pageShape,
		&domain.MetricQuery{Period: "week"},
	)

	require.Len(t, groups, 3)

	assert.Equal(t, []string{"page_impressions", "page_post_engagements"}, groups[0].metrics)
	assert.Equal(t, "week", groups[0].params.Get("period"))
	assert.Equal(t, "2025-02-08", groups[0].params.Get("since"))

	assert.Equal(t, []string{"page_fans", "page_fans_country"}, groups[1].metrics)
	assert.Equal(t, "lifetime", groups[1].params.Get("period"))
	assert.Empty(t, groups[1].params.Get("since"))
	assert.Empty(t, groups[1].params.Get("until"))

	assert.Equal(t, []string{"page_daily_follows"}, groups[2].metrics)
	assert.Equal(t, "day", groups[2].params.Get("period"))
}

func TestGetPageInsights_MetricasMistasGeramChamadasSeparadas(t *testing.T) {
	s, client := newTestIntegrator(t)
	ctx := context.Background()

	client.EXPECT().GetPageAccessToken(ctx, "p1").Return("page-token", nil)
	client.EXPECT().GetNodeInsights(ctx, "p1", gomock.Any(), "page-token").
		DoAndReturn(func(_ context.Context, _ string, params url.Values, _ string) ([]metadomain.RawMessage, error) {
			switch params.Get("metric") {
			case "page_impressions":
				assert.Equal(t, "day", params.Get("period"))
				assert.NotEmpty(t, params.Get("since"))
			case "page_fans":
				assert.Equal(t, "lifetime", params.Get("period"))
				assert.Empty(t, params.Get("since"))
			default:
				t.Errorf("métrica inesperada: %s", params.Get("metric"))
			}
			return []metadomain.RawMessage{metadomain.RawMessage(`{}`)}, nil
		}).Times(2)

	data, err := s.GetPageInsights(ctx, "p1", &domain.MetricQuery{Metrics: []string{"page_impressions", "page_fans"}})
	require.NoError(t, err)
	assert.Len(t, data, 2)
}
