package adsproxy

import (
	"context"
	"errors"
	"testing"

	"github.com/jbapex/planeje-sub002/infrastructure/integrator/meta"
	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	metamocks "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/mocks"
	"github.com/jbapex/planeje-sub002/internal/config"
	configmocks "github.com/jbapex/planeje-sub002/internal/config/mocks"
	"github.com/jbapex/planeje-sub002/internal/domain"
	"github.com/jbapex/planeje-sub002/internal/usecases/credential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service    Service
	integrator *metamocks.MockIntegrator
	store      *configmocks.MockSecretStore
	tokens     []string
}

// newFixture monta o serviço com o token vindo do ambiente, a menos que envToken seja vazio
func newFixture(t *testing.T, envToken string) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		integrator: metamocks.NewMockIntegrator(ctrl),
		store:      configmocks.NewMockSecretStore(ctrl),
	}

	cfg := &config.Config{}
	cfg.Meta.AccessToken = envToken
	cfg.Meta.TokenSecretName = config.DefaultTokenSecretName

	f.service = NewService(credential.NewService(cfg, f.store), func(token string) meta.Integrator {
		f.tokens = append(f.tokens, token)
		return f.integrator
	})

	return f
}

func encode(t *testing.T, resp Response) string {
	t.Helper()

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(out)
}

func strPtr(s string) *string { return &s }

func TestDispatch_ScenarioA_AdComNomeDaConta(t *testing.T) {
	f := newFixture(t, "env-token")

	f.integrator.EXPECT().GetAdByID(gomock.Any(), "12345").Return(&metadomain.AdSummary{
		ID:       "12345",
		Name:     "My Ad",
		Campaign: &metadomain.NamedRef{Name: "Camp"},
	}, strPtr("Acme Inc"), nil)

	resp := f.service.Dispatch(context.Background(), []byte(`{"action":"get-ad-by-id","adId":"12345"}`))

	assert.JSONEq(t, `{
		"ad": {"id":"12345","name":"My Ad","campaign":{"name":"Camp"},"adset":null,"thumbnail_url":null},
		"accountName": "Acme Inc"
	}`, encode(t, resp))
	assert.Equal(t, []string{"env-token"}, f.tokens)
}

func TestDispatch_ScenarioB_SemAdID(t *testing.T) {
	f := newFixture(t, "env-token")

	resp := f.service.Dispatch(context.Background(), []byte(`{"action":"get-ad-by-id"}`))

	assert.JSONEq(t, `{
		"error": {"message":"adId is required","code":"MISSING_AD_ID"},
		"ad": null,
		"accountName": null
	}`, encode(t, resp))
}

func TestDispatch_ScenarioC_AcaoDesconhecida(t *testing.T) {
	f := newFixture(t, "")

	resp := f.service.Dispatch(context.Background(), []byte(`{"action":"bogus-action"}`))

	assert.JSONEq(t, `{"error":{"message":"Unknown action: bogus-action"}}`, encode(t, resp))
	assert.Empty(t, f.tokens)
}

func TestDispatch_ScenarioD_SemToken(t *testing.T) {
	tests := []struct {
		name     string
		vaultErr error
	}{
		{name: "vault sem o segredo", vaultErr: config.ErrSecretNotFound},
		{name: "vault fora do ar", vaultErr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			f.store.EXPECT().GetSecret(gomock.Any(), config.DefaultTokenSecretName).Return("", tt.vaultErr)

			resp := f.service.Dispatch(context.Background(), []byte(`{"action":"check-connection"}`))

			assert.JSONEq(t, `{
				"error": {"message":"Meta access token not configured","code":"TOKEN_NOT_FOUND"},
				"connected": false
			}`, encode(t, resp))
			assert.Empty(t, f.tokens)
		})
	}
}

func TestDispatch_TokenNaoEncontradoMantemChavePrincipal(t *testing.T) {
	f := newFixture(t, "")
	f.store.EXPECT().GetSecret(gomock.Any(), gomock.Any()).Return("", config.ErrSecretNotFound)

	resp := f.service.Dispatch(context.Background(), []byte(`{"action":"get-campaigns","adAccountId":"1"}`))

	assert.Equal(t, false, resp["connected"])
	assert.Equal(t, emptyList, resp["campaigns"])
	assert.True(t, resp.HasError())
}

func TestDispatch_TokenDoVault(t *testing.T) {
	f := newFixture(t, "")
	f.store.EXPECT().GetSecret(gomock.Any(), config.DefaultTokenSecretName).Return("vault-token", nil)
	f.integrator.EXPECT().CheckConnection(gomock.Any()).Return(&metadomain.User{ID: "1", Name: "System User"}, nil)

	resp := f.service.Dispatch(context.Background(), []byte(`{"action":"check-connection"}`))

	assert.Equal(t, true, resp["connected"])
	assert.Equal(t, "vault", resp["tokenSource"])
	assert.False(t, resp.HasError())
	assert.Equal(t, []string{"vault-token"}, f.tokens)
}

func TestDispatch_CorpoInvalido(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "objeto vazio", body: `{}`, code: "MISSING_ACTION"},
		{name: "action vazia", body: `{"action":"  "}`, code: "MISSING_ACTION"},
		{name: "action não string", body: `{"action":42}`, code: "MISSING_ACTION"},
		{name: "json quebrado", body: `{"action":`, code: "INVALID_REQUEST"},
		{name: "array", body: `["check-connection"]`, code: "INVALID_REQUEST"},
		{name: "null", body: `null`, code: "INVALID_REQUEST"},
		{name: "vazio", body: ``, code: "INVALID_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "env-token")

			resp := f.service.Dispatch(context.Background(), []byte(tt.body))

			require.True(t, resp.HasError())
			assert.Contains(t, encode(t, resp), `"code":"`+tt.code+`"`)
			assert.Empty(t, f.tokens)
		})
	}
}

// Todas as ações conhecidas mantêm a chave principal quando a Graph API falha
func TestDispatch_FormatoEstavelEmFalha(t *testing.T) {
	f := newFixture(t, "env-token")
	upstream := &metadomain.ErrorDetails{Message: "Unsupported get request", Type: "GraphMethodException", Code: 100}

	anyArg := gomock.Any()
	f.integrator.EXPECT().CheckConnection(anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetAdByID(anyArg, anyArg).Return(nil, nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetLeadsByForm(anyArg, anyArg, anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetLeadsByAd(anyArg, anyArg, anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetLeadByID(anyArg, anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetAdAccounts(anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetCampaigns(anyArg, anyArg, anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetInsights(anyArg, anyArg, anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetAdSets(anyArg, anyArg, anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetAds(anyArg, anyArg, anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetPages(anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetInstagramAccounts(anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetPageInsights(anyArg, anyArg, anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetPagePosts(anyArg, anyArg, anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetInstagramInsights(anyArg, anyArg, anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().GetInstagramMedia(anyArg, anyArg, anyArg).Return(nil, upstream).AnyTimes()
	f.integrator.EXPECT().PublishPagePost(anyArg, anyArg, anyArg).Return("", upstream).AnyTimes()
	f.integrator.EXPECT().PublishInstagramContent(anyArg, anyArg, anyArg).Return("", upstream).AnyTimes()

	params := `"adId":"1","formId":"2","leadId":"3","adAccountId":"4","campaignId":"5","adsetId":"6",` +
		`"pageId":"7","instagramAccountId":"8","message":"oi","imageUrl":"https://example.com/a.jpg"`

	impl := f.service.(*service)
	for _, action := range f.service.Actions() {
		t.Run(action, func(t *testing.T) {
			resp := f.service.Dispatch(context.Background(), []byte(`{"action":"`+action+`",`+params+`}`))

			require.True(t, resp.HasError())
			assert.Equal(t, upstream, resp["error"])
			for _, key := range impl.actions[action].keys {
				assert.Contains(t, resp, key)
			}
		})
	}
}

func TestDispatch_FalhaDeTransporteViraRequestFailed(t *testing.T) {
	f := newFixture(t, "env-token")
	f.integrator.EXPECT().GetPages(gomock.Any()).Return(nil, errors.New("dial tcp: i/o timeout"))

	resp := f.service.Dispatch(context.Background(), []byte(`{"action":"get-pages"}`))

	assert.JSONEq(t, `{
		"error": {"message":"dial tcp: i/o timeout","code":"REQUEST_FAILED"},
		"pages": []
	}`, encode(t, resp))
}

func TestDispatch_ListaVaziaNaoViraNull(t *testing.T) {
	f := newFixture(t, "env-token")
	f.integrator.EXPECT().GetLeadsByForm(gomock.Any(), "form1", 0).Return(nil, nil)

	resp := f.service.Dispatch(context.Background(), []byte(`{"action":"get-leads-by-form","formId":"form1"}`))

	assert.JSONEq(t, `{"leads":[]}`, encode(t, resp))
}

func TestDispatch_GetAdSetsEscolheOPai(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		parentID string
	}{
		{name: "campanha", body: `{"action":"get-adsets","campaignId":"c1","adAccountId":"999"}`, parentID: "c1"},
		{name: "conta sem prefixo", body: `{"action":"get-adsets","adAccountId":"999"}`, parentID: "act_999"},
		{name: "conta com prefixo", body: `{"action":"get-adsets","adAccountId":"act_999"}`, parentID: "act_999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "env-token")
			f.integrator.EXPECT().GetAdSets(gomock.Any(), tt.parentID, gomock.Any()).Return([]metadomain.AdSet{{ID: "s1"}}, nil)

			resp := f.service.Dispatch(context.Background(), []byte(tt.body))

			assert.False(t, resp.HasError())
			assert.Len(t, resp["adsets"], 1)
		})
	}
}

func TestDispatch_GetAdsSemPai(t *testing.T) {
	f := newFixture(t, "env-token")

	resp := f.service.Dispatch(context.Background(), []byte(`{"action":"get-ads"}`))

	assert.JSONEq(t, `{
		"error": {"message":"adsetId, campaignId or adAccountId is required","code":"MISSING_PARENT_ID"},
		"ads": []
	}`, encode(t, resp))
}

func TestDispatch_GetAccountInsightsRepassaFiltros(t *testing.T) {
	f := newFixture(t, "env-token")

	f.integrator.EXPECT().GetInsights(gomock.Any(), "act_42", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filters *domain.InsightFilters) ([]metadomain.RawMessage, error) {
			require.NotNil(t, filters.StartDate)
			require.NotNil(t, filters.EndDate)
			assert.Equal(t, "2025-01-01", filters.StartDate.Format("2006-01-02"))
			assert.Equal(t, "2025-01-31", filters.EndDate.Format("2006-01-02"))
			assert.Equal(t, "campaign", filters.Level)
			assert.Equal(t, "1", filters.TimeIncrement)
			assert.Equal(t, []string{"spend", "clicks"}, filters.Fields)
			return []metadomain.RawMessage{metadomain.RawMessage(`{"spend":"10"}`)}, nil
		})

	resp := f.service.Dispatch(context.Background(), []byte(`{
		"action":"get-account-insights","adAccountId":42,
		"since":"2025-01-01","until":"2025-01-31",
		"level":"campaign","timeIncrement":1,"fields":"spend, clicks"
	}`))

	assert.JSONEq(t, `{"insights":[{"spend":"10"}]}`, encode(t, resp))
}

func TestDispatch_DataInvalida(t *testing.T) {
	f := newFixture(t, "env-token")

	resp := f.service.Dispatch(context.Background(), []byte(`{"action":"get-campaign-insights","campaignId":"c1","since":"01/02/2025"}`))

	assert.JSONEq(t, `{
		"error": {"message":"invalid since date: 01/02/2025","code":"INVALID_REQUEST"},
		"insights": []
	}`, encode(t, resp))
}

func TestDispatch_IDComCaminhoRejeitado(t *testing.T) {
	f := newFixture(t, "env-token")

	resp := f.service.Dispatch(context.Background(), []byte(`{"action":"get-ad-by-id","adId":"123/../me?fields=id"}`))

	assert.JSONEq(t, `{
		"error": {"message":"invalid adId","code":"INVALID_REQUEST"},
		"ad": null,
		"accountName": null
	}`, encode(t, resp))
	assert.Empty(t, f.tokens)
}

func TestDispatch_PublishPagePost(t *testing.T) {
	t.Run("sem conteúdo", func(t *testing.T) {
		f := newFixture(t, "env-token")

		resp := f.service.Dispatch(context.Background(), []byte(`{"action":"publish-page-post","pageId":"p1"}`))

		assert.JSONEq(t, `{
			"error": {"message":"message, link or imageUrl is required","code":"MISSING_CONTENT"},
			"post_id": null
		}`, encode(t, resp))
	})

	t.Run("com mensagem", func(t *testing.T) {
		f := newFixture(t, "env-token")
		f.integrator.EXPECT().PublishPagePost(gomock.Any(), "p1", &domain.PagePost{Message: "Olá", Link: "https://example.com"}).
			Return("p1_99", nil)

		resp := f.service.Dispatch(context.Background(), []byte(`{"action":"publish-page-post","pageId":"p1","message":"Olá","link":"https://example.com"}`))

		assert.JSONEq(t, `{"success":true,"post_id":"p1_99"}`, encode(t, resp))
	})
}

func TestDispatch_PublishInstagramContent(t *testing.T) {
	t.Run("sem mídia", func(t *testing.T) {
		f := newFixture(t, "env-token")

		resp := f.service.Dispatch(context.Background(), []byte(`{"action":"publish-instagram-content","instagramAccountId":"ig1","caption":"oi"}`))

		assert.JSONEq(t, `{
			"error": {"message":"imageUrl or videoUrl is required","code":"MISSING_MEDIA_URL"},
			"media_id": null
		}`, encode(t, resp))
	})

	t.Run("sem conta", func(t *testing.T) {
		f := newFixture(t, "env-token")

		resp := f.service.Dispatch(context.Background(), []byte(`{"action":"publish-instagram-content","imageUrl":"https://example.com/a.jpg"}`))

		assert.JSONEq(t, `{
			"error": {"message":"instagramAccountId is required","code":"MISSING_INSTAGRAM_ACCOUNT_ID"},
			"media_id": null
		}`, encode(t, resp))
	})

	t.Run("vídeo", func(t *testing.T) {
		f := newFixture(t, "env-token")
		f.integrator.EXPECT().PublishInstagramContent(gomock.Any(), "ig1", &domain.InstagramContent{
			VideoURL: "https://example.com/v.mp4",
			Caption:  "novo",
		}).Return("1789", nil)

		resp := f.service.Dispatch(context.Background(), []byte(`{"action":"publish-instagram-content","instagramAccountId":"ig1","videoUrl":"https://example.com/v.mp4","caption":"novo"}`))

		assert.JSONEq(t, `{"success":true,"media_id":"1789"}`, encode(t, resp))
	})
}

func TestDispatch_GetAdAccountsFalhaTotal(t *testing.T) {
	f := newFixture(t, "env-token")
	f.integrator.EXPECT().GetAdAccounts(gomock.Any()).Return([]metadomain.AdAccount{}, errors.New("boom"))

	resp := f.service.Dispatch(context.Background(), []byte(`{"action":"get-ad-accounts"}`))

	assert.JSONEq(t, `{"error":{"message":"boom","code":"REQUEST_FAILED"},"adAccounts":[]}`, encode(t, resp))
}

func TestActions_Ordenadas(t *testing.T) {
	f := newFixture(t, "env-token")

	actions := f.service.Actions()

	assert.Len(t, actions, 20)
	assert.IsIncreasing(t, actions)
	assert.Contains(t, actions, ActionPublishInstagramContent)
}
