package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
)

const leadFields = "id,created_time,ad_id,form_id,field_data"

// GetLeadsByNodeID lista os leads de um formulário ou de um anúncio. limit 0 traz todos.
func (c *MetaClient) GetLeadsByNodeID(ctx context.Context, nodeID string, limit int) ([]metadomain.RawLead, error) {
	params := url.Values{}
	params.Add("fields", leadFields)

	return getAllAs[metadomain.RawLead](ctx, c, nodeID+"/leads", params, limit)
}

func (c *MetaClient) GetLeadByID(ctx context.Context, leadID string) (*metadomain.RawLead, error) {
	params := url.Values{}
	params.Add("fields", leadFields)

	var lead metadomain.RawLead
	if err := c.getObject(ctx, leadID, params, "", &lead); err != nil {
		return nil, err
	}

	return &lead, nil
}
