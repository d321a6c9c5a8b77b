package httpserver

import "net/http"

// Routes defines HTTP endpoints consumed by the dashboard UI.
type Routes struct {
	Readings http.Handler
	Latest   http.Handler
	Overview http.Handler
	GetRange http.Handler
	PutRange http.Handler
	Refresh  http.Handler
	Health   http.Handler
}

// NewRouter sets up HTTP routing.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Readings != nil {
		mux.Handle("/api/readings", method(http.MethodGet, routes.Readings.ServeHTTP))
	}
	if routes.Latest != nil {
		mux.Handle("/api/readings/latest", method(http.MethodGet, routes.Latest.ServeHTTP))
	}
	if routes.Overview != nil {
		mux.Handle("/api/overview", method(http.MethodGet, routes.Overview.ServeHTTP))
	}
	if routes.GetRange != nil || routes.PutRange != nil {
		mux.Handle("/api/ranges", split(routes.GetRange, routes.PutRange))
	}
	if routes.Refresh != nil {
		mux.Handle("/api/refresh", method(http.MethodPost, routes.Refresh.ServeHTTP))
	}
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health.ServeHTTP))
	}
	return mux
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}

func split(get, put http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if get != nil {
				get.ServeHTTP(w, r)
				return
			}
		case http.MethodPut:
			if put != nil {
				put.ServeHTTP(w, r)
				return
			}
		}
		w.Header().Set("Allow", "GET, PUT")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
