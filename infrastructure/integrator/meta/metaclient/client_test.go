package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/jbapex/planeje-sub002/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*MetaClient, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Meta.URL = srv.URL
	cfg.Meta.PageLimit = 2
	cfg.Meta.MaxPages = 5
	cfg.Meta.PaginationTimeout = time.Minute

	return NewClient(cfg, "system-token").(*MetaClient), srv
}

func TestGetAll_SegueCursoresAteOFim(t *testing.T) {
	var srvURL string
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("after") {
		case "":
			assert.Equal(t, "system-token", r.URL.Query().Get("access_token"))
			assert.Equal(t, "2", r.URL.Query().Get("limit"))
			fmt.Fprintf(w, `{"data":[{"id":"1"},{"id":"2"}],"paging":{"next":"%s/me/adaccounts?after=p2"}}`, srvURL)
		case "p2":
			fmt.Fprint(w, `{"data":[{"id":"3"}]}`)
		}
	})
	srvURL = srv.URL

	items, err := client.getAll(context.Background(), "me/adaccounts", nil, 0)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestGetAll_ParaQuandoCursorSeRepete(t *testing.T) {
	var calls int32
	var srvURL string
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		fmt.Fprintf(w, `{"data":[{"id":"x"}],"paging":{"next":"%s/me/adaccounts?after=loop"}}`, srvURL)
	})
	srvURL = srv.URL

	items, err := client.getAll(context.Background(), "me/adaccounts", nil, 0)
	require.NoError(t, err)

	// primeira página + uma visita ao cursor repetido
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Len(t, items, 2)
}

func TestGetAll_RespeitaLimiteDePaginas(t *testing.T) {
	var calls int32
	var srvURL string
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		fmt.Fprintf(w, `{"data":[{"id":"%d"}],"paging":{"next":"%s/me/adaccounts?after=c%d"}}`, n, srvURL, n)
	})
	srvURL = srv.URL

	items, err := client.getAll(context.Background(), "me/adaccounts", nil, 0)
	require.NoError(t, err)

	assert.Equal(t, int32(client.Cfg.Meta.MaxPages), atomic.LoadInt32(&calls))
	assert.Len(t, items, client.Cfg.Meta.MaxPages)
}

func TestGetAll_ParaNaPaginaVazia(t *testing.T) {
	var srvURL string
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"data":[],"paging":{"next":"%s/me/adaccounts?after=c1"}}`, srvURL)
	})
	srvURL = srv.URL

	items, err := client.getAll(context.Background(), "me/adaccounts", nil, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetAll_MaxItemsTruncaResultado(t *testing.T) {
	var srvURL string
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"data":[{"id":"1"},{"id":"2"}],"paging":{"next":"%s/f/leads?after=%s"}}`, srvURL, r.URL.Query().Get("after")+"x")
	})
	srvURL = srv.URL

	items, err := client.getAll(context.Background(), "f/leads", nil, 3)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestGetAll_ErroEmPaginaPosteriorDevolveParcial(t *testing.T) {
	var srvURL string
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("after") == "" {
			fmt.Fprintf(w, `{"data":[{"id":"1"}],"paging":{"next":"%s/me/adaccounts?after=p2"}}`, srvURL)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"An unknown error occurred","type":"OAuthException","code":1}}`)
	})
	srvURL = srv.URL

	items, err := client.getAll(context.Background(), "me/adaccounts", nil, 0)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestGetAll_ErroNaPrimeiraPagina(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Unsupported get request","type":"GraphMethodException","code":100,"error_subcode":33,"fbtrace_id":"AbC"}}`)
	})

	items, err := client.getAll(context.Background(), "me/adaccounts", nil, 0)
	require.Error(t, err)
	assert.Nil(t, items)

	graphErr, ok := metadomain.AsGraphError(err)
	require.True(t, ok)
	assert.Equal(t, 100, graphErr.Code)
	assert.Equal(t, 33, graphErr.ErrorSubcode)
	assert.Equal(t, "AbC", graphErr.FBTraceID)
}

func TestHandleResponse_ErroComStatus200(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":{"message":"(#4) Application request limit reached","type":"OAuthException","code":4}}`)
	})

	_, err := client.GetAdAccountName(context.Background(), "999")
	require.Error(t, err)
	assert.True(t, metadomain.IsRateLimitError(err))
}

func TestGetAdAccountName_AdicionaPrefixoAct(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_999", r.URL.Path)
		assert.Equal(t, "name", r.URL.Query().Get("fields"))
		fmt.Fprint(w, `{"name":"Acme Inc","id":"act_999"}`)
	})

	name, err := client.GetAdAccountName(context.Background(), "999")
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", name)
}

func TestTransportError_NaoExpoeToken(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.GetMe(context.Background())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "system-token")

	_, isGraph := metadomain.AsGraphError(err)
	assert.False(t, isGraph)
}

func TestAppSecretProof(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("appsecret_proof"))
		fmt.Fprint(w, `{"id":"1","name":"System User"}`)
	})
	client.Cfg.Meta.AppSecret = "app-secret"

	me, err := client.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "System User", me.Name)

	client.Cfg.Meta.AppSecret = ""
	assert.Empty(t, client.appSecretProof("system-token"))
}

func TestCreatePagePost_UsaTokenDaPagina(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/123/photos", r.URL.Path)
		assert.Equal(t, "page-token", r.PostForm.Get("access_token"))
		assert.Equal(t, "https://img/x.png", r.PostForm.Get("url"))
		fmt.Fprint(w, `{"id":"photo-1","post_id":"123_456"}`)
	})

	form := map[string][]string{"url": {"https://img/x.png"}}
	postID, err := client.CreatePagePost(context.Background(), "123", "page-token", "photos", form)
	require.NoError(t, err)
	assert.Equal(t, "123_456", postID)
}
