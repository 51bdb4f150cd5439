package meta

import (
	"context"
	"strings"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

var phoneFields = []string{"phone_number", "phone", "telefone"}

func (s *MetaIntegrator) GetLeadsByForm(ctx context.Context, formID string, limit int) ([]metadomain.Lead, error) {
	return s.getLeads(ctx, formID, "form_id", limit)
}

func (s *MetaIntegrator) GetLeadsByAd(ctx context.Context, adID string, limit int) ([]metadomain.Lead, error) {
	return s.getLeads(ctx, adID, "ad_id", limit)
}

func (s *MetaIntegrator) getLeads(ctx context.Context, nodeID, kind string, limit int) ([]metadomain.Lead, error) {
	raw, err := s.Client.GetLeadsByNodeID(ctx, nodeID, limit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			kind:    nodeID,
			"error": err.Error(),
		}).Error("meta: failed to get leads")
		return []metadomain.Lead{}, err
	}

	leads := make([]metadomain.Lead, 0, len(raw))
	for _, r := range raw {
		leads = append(leads, NormalizeLead(r))
	}

	return leads, nil
}

func (s *MetaIntegrator) GetLeadByID(ctx context.Context, leadID string) (*metadomain.Lead, error) {
	raw, err := s.Client.GetLeadByID(ctx, leadID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"lead_id": leadID,
			"error":   err.Error(),
		}).Error("meta: failed to get lead")
		return nil, err
	}

	lead := NormalizeLead(*raw)
	return &lead, nil
}

// NormalizeLead achata field_data em um mapa nome -> primeiro valor e deriva nome, email e telefone.
// Campos ausentes ficam como string vazia.
func NormalizeLead(raw metadomain.RawLead) metadomain.Lead {
	fields := make(map[string]string, len(raw.FieldData))
	for _, f := range raw.FieldData {
		if _, ok := fields[f.Name]; ok {
			continue
		}
		value := ""
		if len(f.Values) > 0 {
			value = f.Values[0]
		}
		fields[f.Name] = value
	}

	nome := fields["full_name"]
	if nome == "" {
		nome = strings.TrimSpace(fields["first_name"] + " " + fields["last_name"])
	}

	telefone := ""
	for _, name := range phoneFields {
		if fields[name] != "" {
			telefone = fields[name]
			break
		}
	}

	return metadomain.Lead{
		ID:          raw.ID,
		CreatedTime: raw.CreatedTime,
		AdID:        raw.AdID,
		FormID:      raw.FormID,
		Nome:        nome,
		Email:       fields["email"],
		Telefone:    telefone,
		FieldData:   fields,
	}
}
