package chi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
	logpkg "github.com/moradia-ai/moradia/internal/logger"
	authuc "github.com/moradia-ai/moradia/internal/usecase/auth"
	listinguc "github.com/moradia-ai/moradia/internal/usecase/listing"
	searchuc "github.com/moradia-ai/moradia/internal/usecase/search"
)

// Server holds the HTTP handlers for the listings API.
type Server struct {
	listings  *listinguc.Service
	search    *searchuc.Service
	auth      *authuc.Service
	jwtSecret []byte
	logger    *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	listings *listinguc.Service,
	search *searchuc.Service,
	auth *authuc.Service,
	jwtSecret []byte,
	logger *zap.Logger,
) *Server {
	return &Server{
		listings:  listings,
		search:    search,
		auth:      auth,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Routes mounts the API routes on the given router. Reads are public,
// writes require a valid token.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", s.ListListings)
			r.Get("/{id}", s.GetListing)
			r.Post("/search", s.SemanticSearch)

			r.Group(func(r chi.Router) {
				r.Use(JWTAuthMiddleware(s.jwtSecret))
				r.Post("/sale", s.CreateForSale)
				r.Post("/rental", s.CreateForRental)
				r.Put("/{id}", s.UpdateListing)
				r.Delete("/{id}", s.DeleteListing)
			})
		})
	})
}

// Register handles POST /api/auth/register.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var in authuc.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := s.auth.Register(r.Context(), in)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "user registered", userToResponse(u))
}

// Login handles POST /api/auth/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	token, u, err := s.auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "login successful", loginResponse{
		Token: token,
		User:  userToResponse(u),
	})
}

// ListListings handles GET /api/properties.
func (s *Server) ListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f, err := filterFromQuery(q)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	page, size, err := pageParams(q)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.listings.List(r.Context(), f, page, size)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "properties retrieved", pageToResponse(p))
}

// GetListing handles GET /api/properties/{id}.
func (s *Server) GetListing(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	l, err := s.listings.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "property retrieved", listingToResponse(l))
}

// SemanticSearch handles POST /api/properties/search. Free text goes through
// the extractor and the resulting filter runs the regular paged query.
func (s *Server) SemanticSearch(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	page, size, err := pageParams(r.URL.Query())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	f, err := s.search.ExtractFilter(r.Context(), in.Text)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	logpkg.FromContext(r.Context()).Debug("filter extracted",
		zap.Bool("empty", f.IsZero()))

	p, err := s.listings.List(r.Context(), f, page, size)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "properties retrieved", pageToResponse(p))
}

// CreateForSale handles POST /api/properties/sale.
func (s *Server) CreateForSale(w http.ResponseWriter, r *http.Request) {
	s.createListing(w, r, s.listings.CreateForSale)
}

// CreateForRental handles POST /api/properties/rental.
func (s *Server) CreateForRental(w http.ResponseWriter, r *http.Request) {
	s.createListing(w, r, s.listings.CreateForRental)
}

// UpdateListing handles PUT /api/properties/{id}.
func (s *Server) UpdateListing(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	var in listinguc.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := s.listings.Update(r.Context(), caller, id, in)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "property updated", listingToResponse(l))
}

// DeleteListing handles DELETE /api/properties/{id}.
func (s *Server) DeleteListing(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	if err := s.listings.Delete(r.Context(), caller, id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "property deleted", nil)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

type createFunc func(
	ctx context.Context, caller listinguc.Caller, in listinguc.CreateInput,
) (domlisting.Listing, error)

// createListing is the shared body of the two kind-specific creation handlers.
func (s *Server) createListing(w http.ResponseWriter, r *http.Request, create createFunc) {
	caller, ok := s.requireCaller(w, r)
	if !ok {
		return
	}

	var in listinguc.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := create(r.Context(), caller, in)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "property created", listingToResponse(l))
}

func (s *Server) requireCaller(w http.ResponseWriter, r *http.Request) (listinguc.Caller, bool) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "missing authentication")
		return listinguc.Caller{}, false
	}
	return caller, true
}

func (s *Server) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid property id")
		return uuid.Nil, false
	}
	return id, true
}
