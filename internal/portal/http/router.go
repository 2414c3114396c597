package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gkrp/dataportal/internal/portal/service"
	"github.com/gkrp/dataportal/internal/portal/store"
	"github.com/gkrp/dataportal/pkg/httpx"
	"github.com/gkrp/dataportal/pkg/jwtx"
	"github.com/gkrp/dataportal/pkg/slogx"

	_ "github.com/gkrp/dataportal/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	baseURL      string
	inviteTTL    int
	sessionTTL   time.Duration
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService   *service.AuthService
	InviteService *service.InviteService
	RecordService *service.RecordService
	ReportService *service.ReportService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion, baseURL string,
	inviteTTLHours int,
	sessionTTL time.Duration,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		baseURL:      baseURL,
		inviteTTL:    inviteTTLHours,
		sessionTTL:   sessionTTL,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Excavation Data Portal API
//	@version		0.1.0
//	@description	Archaeological excavation data portal: invitation-based accounts, field record CRUD and fixed-shape analytics queries with histogram reports.
//	@description
//	@description				Session tokens are signed with HS256 and passed as bearer tokens.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerRecords()
	r.registerAnalytics()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService, SessionTTL: r.sessionTTL}

	// POST /login - strict rate limit by IP + username (brute force prevention)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	redeemHandler := &InviteRedeemHandler{InviteService: r.InviteService}

	// POST /invites/redeem - strict rate limit by IP (unauthenticated activation endpoint)
	r.Mux.Handle("POST /v1/invites/redeem",
		httpx.Chain(redeemHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	mintHandler := &InviteMintHandler{
		InviteService: r.InviteService,
		BaseURL:       r.baseURL,
		TTLHours:      r.inviteTTL,
	}

	// POST /invites/mint - admin operation
	r.Mux.Handle("POST /v1/invites/mint",
		httpx.Chain(mintHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:write"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	usersHandler := &UsersHandler{InviteService: r.InviteService}

	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:read"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /v1/users/{id}/active",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleSetActive),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:write"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

// registerRecords wires the CRUD surface for all four entities. Reads need
// records:read, writes records:write.
func (r *Router) registerRecords() {
	read := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("records:read"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}
	write := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("records:write"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	layers := &LayersHandler{Records: r.RecordService}
	r.Mux.Handle("GET /v1/layers", read(layers.HandleList))
	r.Mux.Handle("GET /v1/layers/{id}", read(layers.HandleGet))
	r.Mux.Handle("POST /v1/layers", write(layers.HandleCreate))
	r.Mux.Handle("PUT /v1/layers/{id}", write(layers.HandleUpdate))
	r.Mux.Handle("DELETE /v1/layers/{id}", write(layers.HandleDelete))

	fragments := &FragmentsHandler{Records: r.RecordService}
	r.Mux.Handle("GET /v1/fragments", read(fragments.HandleList))
	r.Mux.Handle("GET /v1/fragments/{id}", read(fragments.HandleGet))
	r.Mux.Handle("POST /v1/fragments", write(fragments.HandleCreate))
	r.Mux.Handle("PUT /v1/fragments/{id}", write(fragments.HandleUpdate))
	r.Mux.Handle("DELETE /v1/fragments/{id}", write(fragments.HandleDelete))

	ornaments := &OrnamentsHandler{Records: r.RecordService}
	r.Mux.Handle("GET /v1/ornaments", read(ornaments.HandleList))
	r.Mux.Handle("GET /v1/ornaments/{id}", read(ornaments.HandleGet))
	r.Mux.Handle("POST /v1/ornaments", write(ornaments.HandleCreate))
	r.Mux.Handle("PUT /v1/ornaments/{id}", write(ornaments.HandleUpdate))
	r.Mux.Handle("DELETE /v1/ornaments/{id}", write(ornaments.HandleDelete))

	finds := &FindsHandler{Records: r.RecordService}
	r.Mux.Handle("GET /v1/finds", read(finds.HandleList))
	r.Mux.Handle("GET /v1/finds/{id}", read(finds.HandleGet))
	r.Mux.Handle("POST /v1/finds", write(finds.HandleCreate))
	r.Mux.Handle("PUT /v1/finds/{id}", write(finds.HandleUpdate))
	r.Mux.Handle("DELETE /v1/finds/{id}", write(finds.HandleDelete))
}

func (r *Router) registerAnalytics() {
	h := &AnalyticsHandler{Reports: r.ReportService}

	secured := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("analytics:read"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/analytics/data", secured(h.HandleData))
	r.Mux.Handle("GET /v1/analytics/report", secured(h.HandleReport))
	r.Mux.Handle("GET /v1/analytics/data.csv", secured(h.HandleCSV))
	r.Mux.Handle("GET /v1/analytics/chart.json", secured(h.HandleChart))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
