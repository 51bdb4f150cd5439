package adsproxy

import (
	"context"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/jbapex/planeje-sub002/internal/domain"
	"github.com/jbapex/planeje-sub002/pkg/apiErrors"
	"github.com/jbapex/planeje-sub002/pkg/log"
)

// withError devolve o erro upstream já com a chave principal vazia
func withError(ctx context.Context, action string, err error) Response {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"action": action,
		"error":  err.Error(),
	})

	if graphErr, ok := metadomain.AsGraphError(err); ok && graphErr.IsTokenExpired() {
		logger.Error("adsproxy: meta access token expired or revoked")
	} else {
		logger.Warn("adsproxy: upstream call failed")
	}

	return upstreamError(err)
}

func (s *service) checkConnection(ctx context.Context, c *call) Response {
	user, err := c.integrator.CheckConnection(ctx)
	if err != nil {
		resp := withError(ctx, ActionCheckConnection, err)
		resp["connected"] = false
		return resp
	}

	return Response{
		"connected":   true,
		"user":        user,
		"tokenSource": string(c.tokenSource),
	}
}

func (s *service) getAdByID(ctx context.Context, c *call) Response {
	adID := c.req.String("adId")
	if adID == "" {
		return missingParam(apiErrors.ErrMissingAdID, "adId")
	}

	ad, accountName, err := c.integrator.GetAdByID(ctx, adID)
	if err != nil {
		return withError(ctx, ActionGetAdByID, err)
	}

	return Response{
		"ad":          ad,
		"accountName": accountName,
	}
}

func (s *service) getLeadsByForm(ctx context.Context, c *call) Response {
	formID := c.req.String("formId")
	if formID == "" {
		return missingParam(apiErrors.ErrMissingFormID, "formId")
	}

	leads, err := c.integrator.GetLeadsByForm(ctx, formID, c.req.Int("limit"))
	if err != nil {
		return withError(ctx, ActionGetLeadsByForm, err)
	}

	return Response{"leads": nonNil(leads)}
}

func (s *service) getLeadsByAd(ctx context.Context, c *call) Response {
	adID := c.req.String("adId")
	if adID == "" {
		return missingParam(apiErrors.ErrMissingAdID, "adId")
	}

	leads, err := c.integrator.GetLeadsByAd(ctx, adID, c.req.Int("limit"))
	if err != nil {
		return withError(ctx, ActionGetLeadsByAd, err)
	}

	return Response{"leads": nonNil(leads)}
}

func (s *service) getLeadByID(ctx context.Context, c *call) Response {
	leadID := c.req.String("leadId")
	if leadID == "" {
		return missingParam(apiErrors.ErrMissingLeadID, "leadId")
	}

	lead, err := c.integrator.GetLeadByID(ctx, leadID)
	if err != nil {
		return withError(ctx, ActionGetLeadByID, err)
	}

	return Response{"lead": lead}
}

func (s *service) getAdAccounts(ctx context.Context, c *call) Response {
	accounts, err := c.integrator.GetAdAccounts(ctx)
	if err != nil {
		resp := withError(ctx, ActionGetAdAccounts, err)
		resp["adAccounts"] = nonNil(accounts)
		return resp
	}

	return Response{"adAccounts": nonNil(accounts)}
}

func (s *service) getCampaigns(ctx context.Context, c *call) Response {
	accountID := c.req.String("adAccountId")
	if accountID == "" {
		return missingParam(apiErrors.ErrMissingAdAccountID, "adAccountId")
	}

	filters, errResp := c.req.insightFilters()
	if errResp != nil {
		return errResp
	}

	campaigns, err := c.integrator.GetCampaigns(ctx, accountID, filters)
	if err != nil {
		return withError(ctx, ActionGetCampaigns, err)
	}

	return Response{"campaigns": nonNil(campaigns)}
}

func (s *service) getAccountInsights(ctx context.Context, c *call) Response {
	accountID := c.req.String("adAccountId")
	if accountID == "" {
		return missingParam(apiErrors.ErrMissingAdAccountID, "adAccountId")
	}
	return s.insights(ctx, c, ActionGetAccountInsights, metadomain.NormalizeAccountID(accountID))
}

func (s *service) getCampaignInsights(ctx context.Context, c *call) Response {
	campaignID := c.req.String("campaignId")
	if campaignID == "" {
		return missingParam(apiErrors.ErrMissingCampaignID, "campaignId")
	}
	return s.insights(ctx, c, ActionGetCampaignInsights, campaignID)
}

func (s *service) getAdInsights(ctx context.Context, c *call) Response {
	adID := c.req.String("adId")
	if adID == "" {
		return missingParam(apiErrors.ErrMissingAdID, "adId")
	}
	return s.insights(ctx, c, ActionGetAdInsights, adID)
}

func (s *service) insights(ctx context.Context, c *call, action, objectID string) Response {
	filters, errResp := c.req.insightFilters()
	if errResp != nil {
		return errResp
	}

	insights, err := c.integrator.GetInsights(ctx, objectID, filters)
	if err != nil {
		return withError(ctx, action, err)
	}

	return Response{"insights": nonNil(insights)}
}

func (s *service) getAdSets(ctx context.Context, c *call) Response {
	parentID, key := c.req.FirstString("campaignId", "adAccountId")
	if parentID == "" {
		return errorResponse(apiErrors.ErrMissingParentID, "campaignId or adAccountId is required")
	}
	if key == "adAccountId" {
		parentID = metadomain.NormalizeAccountID(parentID)
	}

	filters, errResp := c.req.insightFilters()
	if errResp != nil {
		return errResp
	}

	adsets, err := c.integrator.GetAdSets(ctx, parentID, filters)
	if err != nil {
		return withError(ctx, ActionGetAdSets, err)
	}

	return Response{"adsets": nonNil(adsets)}
}

func (s *service) getAds(ctx context.Context, c *call) Response {
	parentID, key := c.req.FirstString("adsetId", "campaignId", "adAccountId")
	if parentID == "" {
		return errorResponse(apiErrors.ErrMissingParentID, "adsetId, campaignId or adAccountId is required")
	}
	if key == "adAccountId" {
		parentID = metadomain.NormalizeAccountID(parentID)
	}

	filters, errResp := c.req.insightFilters()
	if errResp != nil {
		return errResp
	}

	ads, err := c.integrator.GetAds(ctx, parentID, filters)
	if err != nil {
		return withError(ctx, ActionGetAds, err)
	}

	return Response{"ads": nonNil(ads)}
}

func (s *service) getPages(ctx context.Context, c *call) Response {
	pages, err := c.integrator.GetPages(ctx)
	if err != nil {
		return withError(ctx, ActionGetPages, err)
	}

	return Response{"pages": nonNil(pages)}
}

func (s *service) getInstagramAccounts(ctx context.Context, c *call) Response {
	accounts, err := c.integrator.GetInstagramAccounts(ctx)
	if err != nil {
		return withError(ctx, ActionGetInstagramAccounts, err)
	}

	return Response{"instagramAccounts": nonNil(accounts)}
}

func (s *service) getPageInsights(ctx context.Context, c *call) Response {
	pageID := c.req.String("pageId")
	if pageID == "" {
		return missingParam(apiErrors.ErrMissingPageID, "pageId")
	}

	query, errResp := c.req.metricQuery()
	if errResp != nil {
		return errResp
	}

	insights, err := c.integrator.GetPageInsights(ctx, pageID, query)
	if err != nil {
		return withError(ctx, ActionGetPageInsights, err)
	}

	return Response{"insights": nonNil(insights)}
}

func (s *service) getPagePosts(ctx context.Context, c *call) Response {
	pageID := c.req.String("pageId")
	if pageID == "" {
		return missingParam(apiErrors.ErrMissingPageID, "pageId")
	}

	posts, err := c.integrator.GetPagePosts(ctx, pageID, c.req.Int("limit"))
	if err != nil {
		return withError(ctx, ActionGetPagePosts, err)
	}

	return Response{"posts": nonNil(posts)}
}

func (s *service) getInstagramInsights(ctx context.Context, c *call) Response {
	accountID := c.req.String("instagramAccountId")
	if accountID == "" {
		return missingParam(apiErrors.ErrMissingInstagramAccount, "instagramAccountId")
	}

	query, errResp := c.req.metricQuery()
	if errResp != nil {
		return errResp
	}

	insights, err := c.integrator.GetInstagramInsights(ctx, accountID, query)
	if err != nil {
		return withError(ctx, ActionGetInstagramInsights, err)
	}

	return Response{"insights": nonNil(insights)}
}

func (s *service) getInstagramMedia(ctx context.Context, c *call) Response {
	accountID := c.req.String("instagramAccountId")
	if accountID == "" {
		return missingParam(apiErrors.ErrMissingInstagramAccount, "instagramAccountId")
	}

	media, err := c.integrator.GetInstagramMedia(ctx, accountID, c.req.Int("limit"))
	if err != nil {
		return withError(ctx, ActionGetInstagramMedia, err)
	}

	return Response{"media": nonNil(media)}
}

func (s *service) publishPagePost(ctx context.Context, c *call) Response {
	pageID := c.req.String("pageId")
	if pageID == "" {
		return missingParam(apiErrors.ErrMissingPageID, "pageId")
	}

	post := &domain.PagePost{
		Message:  c.req.String("message"),
		Link:     c.req.String("link"),
		ImageURL: c.req.String("imageUrl"),
	}
	if post.Message == "" && post.Link == "" && post.ImageURL == "" {
		return errorResponse(apiErrors.ErrMissingContent, "message, link or imageUrl is required")
	}

	postID, err := c.integrator.PublishPagePost(ctx, pageID, post)
	if err != nil {
		return withError(ctx, ActionPublishPagePost, err)
	}

	return Response{
		"success": true,
		"post_id": postID,
	}
}

func (s *service) publishInstagramContent(ctx context.Context, c *call) Response {
	accountID := c.req.String("instagramAccountId")
	if accountID == "" {
		return missingParam(apiErrors.ErrMissingInstagramAccount, "instagramAccountId")
	}

	content := &domain.InstagramContent{
		ImageURL:  c.req.String("imageUrl"),
		VideoURL:  c.req.String("videoUrl"),
		Caption:   c.req.String("caption"),
		MediaType: c.req.String("mediaType"),
	}
	if content.ImageURL == "" && content.VideoURL == "" {
		return errorResponse(apiErrors.ErrMissingMediaURL, "imageUrl or videoUrl is required")
	}

	mediaID, err := c.integrator.PublishInstagramContent(ctx, accountID, content)
	if err != nil {
		return withError(ctx, ActionPublishInstagramContent, err)
	}

	return Response{
		"success":  true,
		"media_id": mediaID,
	}
}

// nonNil evita que uma lista vazia seja serializada como null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
