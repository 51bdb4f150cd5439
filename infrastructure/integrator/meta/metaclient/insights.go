package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
)

// GetInsightsByObjectID busca /{id}/insights de conta, campanha, conjunto ou anúncio.
// Os parâmetros (fields, time_range ou date_preset, level, time_increment) vêm prontos do integrador.
func (c *MetaClient) GetInsightsByObjectID(ctx context.Context, objectID string, params url.Values) (*metadomain.InsightsEdge, error) {
	data, err := c.getAll(ctx, objectID+"/insights", params, 0)
	if err != nil {
		return nil, err
	}

	return &metadomain.InsightsEdge{Data: data}, nil
}

// GetNodeInsights busca /{id}/insights de página ou conta do Instagram.
// Não segue paging.next: nesses nós a paginação avança a janela de tempo, não os resultados.
func (c *MetaClient) GetNodeInsights(ctx context.Context, nodeID string, params url.Values, accessToken string) ([]metadomain.RawMessage, error) {
	var page metadomain.Page
	if err := c.getObject(ctx, nodeID+"/insights", params, accessToken, &page); err != nil {
		return nil, err
	}

	if page.Data == nil {
		return []metadomain.RawMessage{}, nil
	}

	return page.Data, nil
}
