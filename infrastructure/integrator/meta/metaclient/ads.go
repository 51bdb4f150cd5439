package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
)

const (
	campaignFields = "id,name,status,effective_status,objective,daily_budget,lifetime_budget,budget_remaining,start_time,stop_time,created_time"
	adSetFields    = "id,name,status,effective_status,campaign_id,daily_budget,lifetime_budget,optimization_goal,billing_event,start_time,end_time"
	adFields       = "id,name,status,effective_status,adset_id,campaign_id,creative{id,name,thumbnail_url,image_url},created_time"
	adDetailFields = "id,name,campaign{name,account_id},adset{name},creative{thumbnail_url}"
)

func (c *MetaClient) GetCampaignsByAccountID(ctx context.Context, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", campaignFields)

	return getAllAs[metadomain.Campaign](ctx, c, metadomain.NormalizeAccountID(accountID)+"/campaigns", params, 0)
}

// GetAdSetsByParentID aceita uma campanha ou uma conta (act_...)
func (c *MetaClient) GetAdSetsByParentID(ctx context.Context, parentID string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Add("fields", adSetFields)

	return getAllAs[metadomain.AdSet](ctx, c, parentID+"/adsets", params, 0)
}

// GetAdsByParentID aceita um conjunto, uma campanha ou uma conta (act_...)
func (c *MetaClient) GetAdsByParentID(ctx context.Context, parentID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", adFields)

	return getAllAs[metadomain.Ad](ctx, c, parentID+"/ads", params, 0)
}

func (c *MetaClient) GetAdByID(ctx context.Context, adID string) (*metadomain.AdDetail, error) {
	params := url.Values{}
	params.Add("fields", adDetailFields)

	var ad metadomain.AdDetail
	if err := c.getObject(ctx, adID, params, "", &ad); err != nil {
		return nil, err
	}

	return &ad, nil
}
