package handler

import (
	"net/http"

	"github.com/jbapex/planeje-sub002/internal/api/handler/router"
	"github.com/jbapex/planeje-sub002/internal/usecases/adsproxy"
)

// ProxyPaths são os caminhos aceitos para o proxy; o último mantém a URL da função do Supabase
var ProxyPaths = []string{
	"/",
	"/meta-ads-api",
	"/functions/v1/meta-ads-api",
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func MetaAds(service adsproxy.Service, callerAuth func(http.Handler) http.Handler) []router.Route {
	routes := make([]router.Route, 0, len(ProxyPaths)+1)

	for _, path := range ProxyPaths {
		routes = append(routes, router.Route{
			Path:        path,
			Method:      http.MethodPost,
			Handler:     MetaAdsProxy(service),
			Middlewares: []func(http.Handler) http.Handler{callerAuth},
		})
	}

	routes = append(routes, router.Route{
		Path:    "/actions",
		Method:  http.MethodGet,
		Handler: ActionList(service),
	})

	return routes
}
