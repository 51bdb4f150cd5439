package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
)

const adAccountFields = "id,account_id,name,account_status,currency,timezone_name,amount_spent,business{id,name}"

// GetAdAccountsByEdge lista as contas de anúncio de um nó, ex.: me/adaccounts ou {business}/owned_ad_accounts
func (c *MetaClient) GetAdAccountsByEdge(ctx context.Context, nodeID, edge string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", adAccountFields)

	return getAllAs[metadomain.AdAccount](ctx, c, nodeID+"/"+edge, params, 0)
}

func (c *MetaClient) GetAdAccountName(ctx context.Context, accountID string) (string, error) {
	params := url.Values{}
	params.Add("fields", "name")

	var account metadomain.AdAccount
	if err := c.getObject(ctx, metadomain.NormalizeAccountID(accountID), params, "", &account); err != nil {
		return "", err
	}

	return account.Name, nil
}
