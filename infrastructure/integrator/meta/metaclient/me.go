package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
)

// GetMe identifica o usuário (ou system user) dono do token
func (c *MetaClient) GetMe(ctx context.Context) (*metadomain.User, error) {
	params := url.Values{}
	params.Add("fields", "id,name")

	var user metadomain.User
	if err := c.getObject(ctx, "me", params, "", &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *MetaClient) GetBusinesses(ctx context.Context) ([]metadomain.Business, error) {
	params := url.Values{}
	params.Add("fields", "id,name")

	return getAllAs[metadomain.Business](ctx, c, "me/businesses", params, 0)
}
