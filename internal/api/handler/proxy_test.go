package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jbapex/planeje-sub002/internal/usecases/adsproxy"
	"github.com/jbapex/planeje-sub002/internal/usecases/adsproxy/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMetaAdsProxy_RespondeSempre200(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	service.EXPECT().Dispatch(gomock.Any(), []byte(`{"action":"get-pages"}`)).Return(adsproxy.Response{
		"error": map[string]any{"message": "Invalid OAuth access token.", "code": 190},
		"pages": []any{},
	})

	rec := httptest.NewRecorder()
	MetaAdsProxy(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"action":"get-pages"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":{"message":"Invalid OAuth access token.","code":190},"pages":[]}`, rec.Body.String())
}

func TestMetaAdsProxy_CorpoGrandeDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	body := `{"action":"publish-page-post","message":"` + strings.Repeat("a", maxBodyBytes) + `"}`

	rec := httptest.NewRecorder()
	MetaAdsProxy(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_REQUEST"`)
}

func TestActionList(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().Actions().Return([]string{"check-connection", "get-pages"})

	rec := httptest.NewRecorder()
	ActionList(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/actions", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"actions":["check-connection","get-pages"]}`, rec.Body.String())
}
