package httpapi

import "net/http"

// Every public route is served at the root and under /api.
var routePrefixes = []string{"", "/api"}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, opts RouterOptions) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if opts.MetricsHandler != nil {
		mux.Handle("GET /metrics", opts.MetricsHandler)
	}
	if !opts.SwaggerEnabled {
		return
	}
	for _, prefix := range routePrefixes {
		registerDocsRoutes(mux, prefix, handler)
	}
}

func registerLiveScoreRoutes(mux *http.ServeMux, prefix string, handler *Handler) {
	mux.HandleFunc("GET "+prefix+"/live-matches", handler.ListLiveMatches)
	mux.HandleFunc("GET "+prefix+"/live-score/{matchId}", handler.GetLiveScore)
	mux.HandleFunc("GET "+prefix+"/live-score/{$}", handler.MissingMatchID)
}

func registerMatchRoutes(mux *http.ServeMux, prefix string, handler *Handler, verifier TokenVerifier) {
	mux.HandleFunc("GET "+prefix+"/matches", handler.ListMatches)
	mux.HandleFunc("GET "+prefix+"/matches/{matchID}", handler.GetMatch)
	mux.Handle("POST "+prefix+"/matches", RequireAuth(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("PUT "+prefix+"/matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMatch)))
	mux.Handle("DELETE "+prefix+"/matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteMatch)))
}
