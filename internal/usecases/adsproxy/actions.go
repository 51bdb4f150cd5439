package adsproxy

import "sort"

const (
	ActionCheckConnection         = "check-connection"
	ActionGetAdByID               = "get-ad-by-id"
	ActionGetLeadsByForm          = "get-leads-by-form"
	ActionGetLeadByID             = "get-lead-by-id"
	ActionGetLeadsByAd            = "get-leads-by-ad"
	ActionGetAdAccounts           = "get-ad-accounts"
	ActionGetCampaigns            = "get-campaigns"
	ActionGetAccountInsights      = "get-account-insights"
	ActionGetCampaignInsights     = "get-campaign-insights"
	ActionGetAdInsights           = "get-ad-insights"
	ActionGetAdSets               = "get-adsets"
	ActionGetAds                  = "get-ads"
	ActionGetPages                = "get-pages"
	ActionGetInstagramAccounts    = "get-instagram-accounts"
	ActionGetPageInsights         = "get-page-insights"
	ActionGetPagePosts            = "get-page-posts"
	ActionGetInstagramInsights    = "get-instagram-insights"
	ActionGetInstagramMedia       = "get-instagram-media"
	ActionPublishPagePost         = "publish-page-post"
	ActionPublishInstagramContent = "publish-instagram-content"
)

var emptyList = []any{}

// actionEntry liga a ação ao handler e às chaves que sempre aparecem na resposta
type actionEntry struct {
	handler actionHandler
	keys    []string
	empty   any
}

func (s *service) actionTable() map[string]actionEntry {
	return map[string]actionEntry{
		ActionCheckConnection:         {handler: s.checkConnection, keys: []string{"connected"}, empty: false},
		ActionGetAdByID:               {handler: s.getAdByID, keys: []string{"ad", "accountName"}, empty: nil},
		ActionGetLeadsByForm:          {handler: s.getLeadsByForm, keys: []string{"leads"}, empty: emptyList},
		ActionGetLeadByID:             {handler: s.getLeadByID, keys: []string{"lead"}, empty: nil},
		ActionGetLeadsByAd:            {handler: s.getLeadsByAd, keys: []string{"leads"}, empty: emptyList},
		ActionGetAdAccounts:           {handler: s.getAdAccounts, keys: []string{"adAccounts"}, empty: emptyList},
		ActionGetCampaigns:            {handler: s.getCampaigns, keys: []string{"campaigns"}, empty: emptyList},
		ActionGetAccountInsights:      {handler: s.getAccountInsights, keys: []string{"insights"}, empty: emptyList},
		ActionGetCampaignInsights:     {handler: s.getCampaignInsights, keys: []string{"insights"}, empty: emptyList},
		ActionGetAdInsights:           {handler: s.getAdInsights, keys: []string{"insights"}, empty: emptyList},
		ActionGetAdSets:               {handler: s.getAdSets, keys: []string{"adsets"}, empty: emptyList},
		ActionGetAds:                  {handler: s.getAds, keys: []string{"ads"}, empty: emptyList},
		ActionGetPages:                {handler: s.getPages, keys: []string{"pages"}, empty: emptyList},
		ActionGetInstagramAccounts:    {handler: s.getInstagramAccounts, keys: []string{"instagramAccounts"}, empty: emptyList},
		ActionGetPageInsights:         {handler: s.getPageInsights, keys: []string{"insights"}, empty: emptyList},
		ActionGetPagePosts:            {handler: s.getPagePosts, keys: []string{"posts"}, empty: emptyList},
		ActionGetInstagramInsights:    {handler: s.getInstagramInsights, keys: []string{"insights"}, empty: emptyList},
		ActionGetInstagramMedia:       {handler: s.getInstagramMedia, keys: []string{"media"}, empty: emptyList},
		ActionPublishPagePost:         {handler: s.publishPagePost, keys: []string{"post_id"}, empty: nil},
		ActionPublishInstagramContent: {handler: s.publishInstagramContent, keys: []string{"media_id"}, empty: nil},
	}
}

// fillDefaults garante as chaves principais da ação, com o valor vazio quando faltarem
func (entry actionEntry) fillDefaults(resp Response) Response {
	for _, key := range entry.keys {
		if _, ok := resp[key]; !ok {
			resp[key] = entry.empty
		}
	}
	return resp
}

// Actions lista as ações conhecidas em ordem alfabética
func (s *service) Actions() []string {
	actions := make([]string, 0, len(s.actions))
	for name := range s.actions {
		actions = append(actions, name)
	}
	sort.Strings(actions)
	return actions
}
