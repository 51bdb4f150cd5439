package metaclient

import (
	"context"
	"net/url"
	"strconv"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/pkg/errors"
)

const mediaFields = "id,caption,media_type,media_url,thumbnail_url,permalink,timestamp,like_count,comments_count"

func (c *MetaClient) GetInstagramMedia(ctx context.Context, instagramAccountID string, limit int) ([]metadomain.Media, error) {
	params := url.Values{}
	params.Add("fields", mediaFields)
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	}

	var page metadomain.Page
	if err := c.getObject(ctx, instagramAccountID+"/media", params, "", &page); err != nil {
		return nil, err
	}

	return decodeItems[metadomain.Media](page.Data)
}

// CreateInstagramContainer cria o container de mídia (primeiro passo da publicação)
func (c *MetaClient) CreateInstagramContainer(ctx context.Context, instagramAccountID string, form url.Values) (string, error) {
	return c.create(ctx, instagramAccountID+"/media", form)
}

func (c *MetaClient) PublishInstagramContainer(ctx context.Context, instagramAccountID, creationID string) (string, error) {
	form := url.Values{}
	form.Add("creation_id", creationID)

	return c.create(ctx, instagramAccountID+"/media_publish", form)
}

func (c *MetaClient) create(ctx context.Context, path string, form url.Values) (string, error) {
	body, err := c.post(ctx, path, form, "")
	if err != nil {
		return "", err
	}

	var resp createResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrapf(err, "meta: decoding response of %s", path)
	}

	if resp.ID == "" {
		return "", errors.Errorf("meta: %s returned no id", path)
	}

	return resp.ID, nil
}
