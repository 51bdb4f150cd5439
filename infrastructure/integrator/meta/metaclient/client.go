package metaclient

import (
	"context"
	"net/http"
	"net/url"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/jbapex/planeje-sub002/internal/config"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

type Client interface {
	GetMe(ctx context.Context) (*metadomain.User, error)
	GetBusinesses(ctx context.Context) ([]metadomain.Business, error)
	GetAdAccountsByEdge(ctx context.Context, nodeID, edge string) ([]metadomain.AdAccount, error)
	GetAdAccountName(ctx context.Context, accountID string) (string, error)
	GetAdByID(ctx context.Context, adID string) (*metadomain.AdDetail, error)
	GetCampaignsByAccountID(ctx context.Context, accountID string) ([]metadomain.Campaign, error)
	GetAdSetsByParentID(ctx context.Context, parentID string) ([]metadomain.AdSet, error)
	GetAdsByParentID(ctx context.Context, parentID string) ([]metadomain.Ad, error)
	GetInsightsByObjectID(ctx context.Context, objectID string, params url.Values) (*metadomain.InsightsEdge, error)
	GetLeadsByNodeID(ctx context.Context, nodeID string, limit int) ([]metadomain.RawLead, error)
	GetLeadByID(ctx context.Context, leadID string) (*metadomain.RawLead, error)
	GetPages(ctx context.Context) ([]metadomain.FacebookPage, error)
	GetPageAccessToken(ctx context.Context, pageID string) (string, error)
	GetNodeInsights(ctx context.Context, nodeID string, params url.Values, accessToken string) ([]metadomain.RawMessage, error)
	GetPagePosts(ctx context.Context, pageID, pageToken string, limit int) ([]metadomain.Post, error)
	GetInstagramMedia(ctx context.Context, instagramAccountID string, limit int) ([]metadomain.Media, error)
	CreatePagePost(ctx context.Context, pageID, pageToken, edge string, form url.Values) (string, error)
	CreateInstagramContainer(ctx context.Context, instagramAccountID string, form url.Values) (string, error)
	PublishInstagramContainer(ctx context.Context, instagramAccountID, creationID string) (string, error)
}

// MetaClient fala com a Graph API usando um único token, resolvido a cada requisição
type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
	token      string
}

func NewClient(cfg *config.Config, accessToken string) Client {
	return &MetaClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: cfg.Meta.RequestTimeout},
		token:      accessToken,
	}
}
