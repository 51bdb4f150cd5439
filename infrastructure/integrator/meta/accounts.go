package meta

import (
	"context"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

// accountSource é uma das fontes consultadas na descoberta de contas de anúncio
type accountSource struct {
	name  string
	fetch func(ctx context.Context) ([]metadomain.AdAccount, error)
}

// GetAdAccounts consulta todas as fontes em ordem e junta o resultado por id.
// Uma fonte que falha é registrada no log e ignorada; vence a primeira ocorrência de cada id.
// Devolve erro apenas quando todas as fontes falham.
func (s *MetaIntegrator) GetAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error) {
	sources := []accountSource{
		s.edgeSource("me", "adaccounts"),
		s.edgeSource("me", "assigned_ad_accounts"),
	}

	for _, b := range s.getBusinesses(ctx) {
		sources = append(sources,
			s.edgeSource(b.ID, "owned_ad_accounts"),
			s.edgeSource(b.ID, "client_ad_accounts"),
		)
	}

	results := make([][]metadomain.AdAccount, 0, len(sources))
	var lastErr error
	for _, source := range sources {
		accounts, err := source.fetch(ctx)
		if err != nil {
			lastErr = err
			logrus.WithFields(logrus.Fields{
				"source": source.name,
				"error":  err.Error(),
			}).Warn("meta: failed to fetch ad accounts from source")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"source":   source.name,
			"accounts": len(accounts),
		}).Debug("meta: ad accounts fetched from source")

		results = append(results, accounts)
	}

	// só é erro quando nenhuma fonte respondeu
	if len(results) == 0 && lastErr != nil {
		return []metadomain.AdAccount{}, lastErr
	}

	merged := mergeAccounts(results...)

	logrus.WithFields(logrus.Fields{
		"sources":        len(sources),
		"total_accounts": len(merged),
	}).Info("meta: ad accounts discovered")

	return merged, nil
}

func (s *MetaIntegrator) edgeSource(nodeID, edge string) accountSource {
	return accountSource{
		name: nodeID + "/" + edge,
		fetch: func(ctx context.Context) ([]metadomain.AdAccount, error) {
			return s.Client.GetAdAccountsByEdge(ctx, nodeID, edge)
		},
	}
}

// getBusinesses usa META_BUSINESS_ID quando configurado, senão lista os negócios do token
func (s *MetaIntegrator) getBusinesses(ctx context.Context) []metadomain.Business {
	if s.cfg.Meta.BusinessID != "" {
		return []metadomain.Business{{ID: s.cfg.Meta.BusinessID}}
	}

	businesses, err := s.Client.GetBusinesses(ctx)
	if err != nil {
		logrus.WithError(err).Warn("meta: failed to list businesses, skipping business ad accounts")
		return nil
	}

	return businesses
}

// mergeAccounts junta as listas na ordem recebida, sem repetir id
func mergeAccounts(lists ...[]metadomain.AdAccount) []metadomain.AdAccount {
	seen := make(map[string]struct{})
	merged := make([]metadomain.AdAccount, 0)

	for _, list := range lists {
		for _, account := range list {
			if _, ok := seen[account.ID]; ok {
				continue
			}
			seen[account.ID] = struct{}{}
			merged = append(merged, account)
		}
	}

	return merged
}
