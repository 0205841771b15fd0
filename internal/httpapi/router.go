// Package httpapi exposes the Solace core over HTTP.
//
// The request layer owns method/path mapping, body decoding, default
// limit substitution, and translating core error conditions into status
// codes. Response shapes are kept compatible with the original
// deployment's API.
package httpapi

import (
	"net/http"

	"github.com/aurumsolace/solace/internal/actuation"
	"github.com/aurumsolace/solace/internal/journal"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// API bundles the handlers' dependencies.
type API struct {
	store   *journal.Store
	planner *actuation.Planner
	log     *zap.Logger
}

// New creates the HTTP API over the given store and planner.
func New(store *journal.Store, planner *actuation.Planner, log *zap.Logger) *API {
	return &API{store: store, planner: planner, log: log}
}

// Router builds the full handler chain: routes wrapped in request-ID,
// access-log, panic-recovery, and CORS middleware.
func (a *API) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/ping", a.ping).Methods(http.MethodGet)

	r.HandleFunc("/checkin/mood", a.checkinMood).Methods(http.MethodPost)
	r.HandleFunc("/checkin/text", a.checkinText).Methods(http.MethodPost)
	r.HandleFunc("/action/log", a.logAction).Methods(http.MethodPost)
	r.HandleFunc("/feedback", a.feedback).Methods(http.MethodPost)
	r.HandleFunc("/actuate", a.actuate).Methods(http.MethodPost)

	r.HandleFunc("/summary", a.summary).Methods(http.MethodGet)
	r.HandleFunc("/streak/actions", a.actionStreak).Methods(http.MethodGet)
	r.HandleFunc("/history/mood", a.moodHistory).Methods(http.MethodGet)
	r.HandleFunc("/history/actions", a.actionHistory).Methods(http.MethodGet)
	r.HandleFunc("/history/feedback", a.feedbackHistory).Methods(http.MethodGet)
	r.HandleFunc("/coach", a.coach).Methods(http.MethodGet)

	var h http.Handler = r
	h = a.accessLog(h)
	h = requestID(h)
	h = handlers.RecoveryHandler()(h)
	h = handlers.CORS(
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
	return h
}
