package meta

import (
	"context"
	"net/url"
	"strings"

	"github.com/jbapex/planeje-sub002/internal/domain"
	"github.com/sirupsen/logrus"
)

// PublishPagePost publica com o token da página: /photos quando há imagem, /feed nos outros casos.
// Não há chave de idempotência; repetir a chamada pode duplicar o post.
func (s *MetaIntegrator) PublishPagePost(ctx context.Context, pageID string, post *domain.PagePost) (string, error) {
	pageToken, err := s.Client.GetPageAccessToken(ctx, pageID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"page_id": pageID,
			"error":   err.Error(),
		}).Error("meta: failed to get page access token")
		return "", err
	}

	edge := "feed"
	form := url.Values{}
	if post.ImageURL != "" {
		edge = "photos"
		form.Set("url", post.ImageURL)
	} else if post.Link != "" {
		form.Set("link", post.Link)
	}
	if post.Message != "" {
		form.Set("message", post.Message)
	}

	postID, err := s.Client.CreatePagePost(ctx, pageID, pageToken, edge, form)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"page_id": pageID,
			"edge":    edge,
			"error":   err.Error(),
		}).Error("meta: failed to publish page post")
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"page_id": pageID,
		"post_id": postID,
	}).Info("meta: page post published")

	return postID, nil
}

// PublishInstagramContent cria o container de mídia e publica em seguida.
// Vídeo sem media_type explícito vai como REELS.
func (s *MetaIntegrator) PublishInstagramContent(ctx context.Context, instagramAccountID string, content *domain.InstagramContent) (string, error) {
	form := url.Values{}
	mediaType := strings.ToUpper(content.MediaType)

	if content.VideoURL != "" {
		form.Set("video_url", content.VideoURL)
		if mediaType == "" || mediaType == domain.MediaTypeVideo {
			mediaType = domain.MediaTypeReels
		}
	} else {
		form.Set("image_url", content.ImageURL)
		if mediaType == domain.MediaTypeImage {
			mediaType = ""
		}
	}
	if mediaType != "" {
		form.Set("media_type", mediaType)
	}
	if content.Caption != "" {
		form.Set("caption", content.Caption)
	}

	logger := logrus.WithField("instagram_account_id", instagramAccountID)

	creationID, err := s.Client.CreateInstagramContainer(ctx, instagramAccountID, form)
	if err != nil {
		logger.WithError(err).Error("meta: failed to create instagram media container")
		return "", err
	}

	mediaID, err := s.Client.PublishInstagramContainer(ctx, instagramAccountID, creationID)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"creation_id": creationID,
			"error":       err.Error(),
		}).Error("meta: failed to publish instagram media container")
		return "", err
	}

	logger.WithField("media_id", mediaID).Info("meta: instagram content published")

	return mediaID, nil
}
