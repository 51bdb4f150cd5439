package meta

import (
	"context"
	"time"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/metaclient"
	"github.com/jbapex/planeje-sub002/internal/config"
	"github.com/jbapex/planeje-sub002/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_integrator.go -package=mocks

// Integrator reúne as operações do proxy sobre a Graph API.
// Cada instância usa o token da requisição em que foi criada.
type Integrator interface {
	CheckConnection(ctx context.Context) (*metadomain.User, error)
	GetAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error)
	GetAdByID(ctx context.Context, adID string) (*metadomain.AdSummary, *string, error)
	GetCampaigns(ctx context.Context, accountID string, filters *domain.InsightFilters) ([]metadomain.Campaign, error)
	GetAdSets(ctx context.Context, parentID string, filters *domain.InsightFilters) ([]metadomain.AdSet, error)
	GetAds(ctx context.Context, parentID string, filters *domain.InsightFilters) ([]metadomain.Ad, error)
	GetInsights(ctx context.Context, objectID string, filters *domain.InsightFilters) ([]metadomain.RawMessage, error)
	GetLeadsByForm(ctx context.Context, formID string, limit int) ([]metadomain.Lead, error)
	GetLeadsByAd(ctx context.Context, adID string, limit int) ([]metadomain.Lead, error)
	GetLeadByID(ctx context.Context, leadID string) (*metadomain.Lead, error)
	GetPages(ctx context.Context) ([]metadomain.FacebookPage, error)
	GetInstagramAccounts(ctx context.Context) ([]metadomain.InstagramAccount, error)
	GetPageInsights(ctx context.Context, pageID string, query *domain.MetricQuery) ([]metadomain.RawMessage, error)
	GetPagePosts(ctx context.Context, pageID string, limit int) ([]metadomain.Post, error)
	GetInstagramInsights(ctx context.Context, instagramAccountID string, query *domain.MetricQuery) ([]metadomain.RawMessage, error)
	GetInstagramMedia(ctx context.Context, instagramAccountID string, limit int) ([]metadomain.Media, error)
	PublishPagePost(ctx context.Context, pageID string, post *domain.PagePost) (string, error)
	PublishInstagramContent(ctx context.Context, instagramAccountID string, content *domain.InstagramContent) (string, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

// NewForToken monta o integrador com um cliente ligado ao token informado
func NewForToken(cfg *config.Config, token string) Integrator {
	return New(cfg, metaclient.NewClient(cfg, token))
}

func (s *MetaIntegrator) CheckConnection(ctx context.Context) (*metadomain.User, error) {
	return s.Client.GetMe(ctx)
}
