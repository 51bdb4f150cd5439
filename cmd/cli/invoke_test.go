package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBody(t *testing.T) {
	tests := []struct {
		name    string
		action  string
		body    string
		params  []string
		want    string
		wantErr bool
	}{
		{
			name:   "só action",
			action: "check-connection",
			want:   `{"action":"check-connection"}`,
		},
		{
			name:   "params",
			action: "get-campaigns",
			params: []string{"adAccountId=act_1", "datePreset=last_7d"},
			want:   `{"action":"get-campaigns","adAccountId":"act_1","datePreset":"last_7d"}`,
		},
		{
			name:   "param sobrescreve body e valor pode ter =",
			action: "publish-page-post",
			body:   `{"pageId":"1","link":"x"}`,
			params: []string{"link=https://example.com/?a=b"},
			want:   `{"action":"publish-page-post","pageId":"1","link":"https://example.com/?a=b"}`,
		},
		{
			name:   "action do argumento vence o body",
			action: "get-pages",
			body:   `{"action":"get-ads"}`,
			want:   `{"action":"get-pages"}`,
		},
		{name: "body inválido", action: "get-pages", body: `[1]`, wantErr: true},
		{name: "body null", action: "get-pages", body: `null`, wantErr: true},
		{name: "param sem =", action: "get-pages", params: []string{"pageId"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildBody(tt.action, tt.body, tt.params)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestIsPretty_Flags(t *testing.T) {
	t.Cleanup(func() {
		prettyFlag = false
		compactFlag = false
	})

	prettyFlag = true
	assert.True(t, isPretty())

	compactFlag = true
	assert.False(t, isPretty())
}
