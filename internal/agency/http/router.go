package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/brindlelabs/agencyhub/internal/agency/identity"
	"github.com/brindlelabs/agencyhub/internal/agency/service"
	"github.com/brindlelabs/agencyhub/internal/agency/store"
	"github.com/brindlelabs/agencyhub/pkg/httpx"
	"github.com/brindlelabs/agencyhub/pkg/slogx"

	_ "github.com/brindlelabs/agencyhub/api/agency" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	identity     identity.Provider
	signInURL    string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	AgencyService       *service.AgencyService
	UserService         *service.UserService
	InvitationService   *service.InvitationService
	TeamService         *service.TeamService
	NotificationService *service.NotificationService
}

func NewRouter(
	provider identity.Provider,
	signInURL, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		identity:     provider,
		signInURL:    signInURL,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		SessionMiddleware(r.identity),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAgencies()
	r.registerUsers()
	r.registerInvitations()
	r.registerNotifications()
	r.registerTeam()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			AgencyHub Membership Service API
//	@version		0.1.0
//	@description	Multi-tenant agency membership service: resolves identity-provider sessions to
//	@description	internal users, manages invitation-based onboarding and direct team provisioning,
//	@description	and keeps a per-agency activity log.
//	@description
//	@description				Sessions are issued by the external identity provider and verified here.
//
//	@contact.name				Brindle Labs
//	@contact.url				https://github.com/brindlelabs/agencyhub
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
//	@description				Identity-provider session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAgencies() {
	// POST /agencies - very strict rate limit by IP (token-guarded setup endpoint)
	h := &AgencyProvisionHandler{AgencyService: r.AgencyService}
	r.Mux.Handle("POST /v1/agencies",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &MeHandler{
		UserService: r.UserService,
		SignInURL:   r.signInURL,
	}

	// Session-scoped read, lenient limit
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	mintHandler := &InvitationMintHandler{InvitationService: r.InvitationService}
	revokeHandler := &InvitationRevokeHandler{InvitationService: r.InvitationService}
	acceptHandler := &InvitationAcceptHandler{
		InvitationService: r.InvitationService,
		SignInURL:         r.signInURL,
	}

	// Admin-facing writes - moderate rate limit
	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(mintHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/invitations/{email}",
		httpx.Chain(revokeHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// Acceptance is hit from invite links - moderate rate limit by IP
	r.Mux.Handle("POST /v1/invitations/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerNotifications() {
	activityHandler := &ActivityHandler{NotificationService: r.NotificationService}
	listHandler := &NotificationListHandler{NotificationService: r.NotificationService}

	r.Mux.Handle("POST /v1/activity",
		httpx.Chain(activityHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/agencies/{agencyID}/notifications",
		httpx.Chain(listHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerTeam() {
	h := &TeamHandler{TeamService: r.TeamService}

	r.Mux.Handle("POST /v1/agencies/{agencyID}/team",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
