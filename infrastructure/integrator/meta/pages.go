package meta

import (
	"context"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

const defaultListLimit = 25

// GetPages lista as páginas sem expor o token de cada uma
func (s *MetaIntegrator) GetPages(ctx context.Context) ([]metadomain.FacebookPage, error) {
	pages, err := s.Client.GetPages(ctx)
	if err != nil {
		logrus.WithError(err).Error("meta: failed to get pages")
		return []metadomain.FacebookPage{}, err
	}

	for i := range pages {
		pages[i].AccessToken = ""
	}

	return pages, nil
}

// GetInstagramAccounts devolve as contas profissionais ligadas às páginas, uma vez cada
func (s *MetaIntegrator) GetInstagramAccounts(ctx context.Context) ([]metadomain.InstagramAccount, error) {
	pages, err := s.Client.GetPages(ctx)
	if err != nil {
		logrus.WithError(err).Error("meta: failed to get pages for instagram accounts")
		return []metadomain.InstagramAccount{}, err
	}

	seen := make(map[string]struct{})
	accounts := make([]metadomain.InstagramAccount, 0)
	for _, page := range pages {
		ig := page.InstagramBusinessAccount
		if ig == nil || ig.ID == "" {
			continue
		}
		if _, ok := seen[ig.ID]; ok {
			continue
		}
		seen[ig.ID] = struct{}{}

		account := *ig
		account.PageID = page.ID
		account.PageName = page.Name
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (s *MetaIntegrator) GetPagePosts(ctx context.Context, pageID string, limit int) ([]metadomain.Post, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	pageToken, err := s.Client.GetPageAccessToken(ctx, pageID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"page_id": pageID,
			"error":   err.Error(),
		}).Error("meta: failed to get page access token")
		return []metadomain.Post{}, err
	}

	posts, err := s.Client.GetPagePosts(ctx, pageID, pageToken, limit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"page_id": pageID,
			"error":   err.Error(),
		}).Error("meta: failed to get page posts")
		return []metadomain.Post{}, err
	}

	return posts, nil
}

func (s *MetaIntegrator) GetInstagramMedia(ctx context.Context, instagramAccountID string, limit int) ([]metadomain.Media, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	media, err := s.Client.GetInstagramMedia(ctx, instagramAccountID, limit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"instagram_account_id": instagramAccountID,
			"error":                err.Error(),
		}).Error("meta: failed to get instagram media")
		return []metadomain.Media{}, err
	}

	return media, nil
}
