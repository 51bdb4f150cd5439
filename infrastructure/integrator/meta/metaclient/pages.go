package metaclient

import (
	"context"
	"net/url"
	"strconv"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/pkg/errors"
)

const (
	pageFields = "id,name,category,access_token,fan_count,picture{url}," +
		"instagram_business_account{id,username,name,profile_picture_url,followers_count,media_count}"
	postFields = "id,message,created_time,full_picture,permalink_url,status_type,shares," +
		"reactions.summary(true).limit(0),comments.summary(true).limit(0)"
)

// GetPages lista as páginas do Facebook acessíveis pelo token, com o token de cada página
func (c *MetaClient) GetPages(ctx context.Context) ([]metadomain.FacebookPage, error) {
	params := url.Values{}
	params.Add("fields", pageFields)

	return getAllAs[metadomain.FacebookPage](ctx, c, "me/accounts", params, 0)
}

func (c *MetaClient) GetPageAccessToken(ctx context.Context, pageID string) (string, error) {
	params := url.Values{}
	params.Add("fields", "access_token")

	var page metadomain.FacebookPage
	if err := c.getObject(ctx, pageID, params, "", &page); err != nil {
		return "", err
	}

	if page.AccessToken == "" {
		return "", errors.Errorf("meta: no access token returned for page %s", pageID)
	}

	return page.AccessToken, nil
}

func (c *MetaClient) GetPagePosts(ctx context.Context, pageID, pageToken string, limit int) ([]metadomain.Post, error) {
	params := url.Values{}
	params.Add("fields", postFields)
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	}

	var page metadomain.Page
	if err := c.getObject(ctx, pageID+"/posts", params, pageToken, &page); err != nil {
		return nil, err
	}

	return decodeItems[metadomain.Post](page.Data)
}

type createResponse struct {
	ID     string `json:"id"`
	PostID string `json:"post_id"`
}

// CreatePagePost publica em /{page}/feed ou /{page}/photos com o token da página
func (c *MetaClient) CreatePagePost(ctx context.Context, pageID, pageToken, edge string, form url.Values) (string, error) {
	body, err := c.post(ctx, pageID+"/"+edge, form, pageToken)
	if err != nil {
		return "", err
	}

	var resp createResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrap(err, "meta: decoding publish response")
	}

	// /photos devolve post_id além do id da foto
	if resp.PostID != "" {
		return resp.PostID, nil
	}

	return resp.ID, nil
}
