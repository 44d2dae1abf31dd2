package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/erwinjamescodes/sinotoriables/internal/domain"
	"github.com/erwinjamescodes/sinotoriables/internal/identity"
	"github.com/erwinjamescodes/sinotoriables/internal/platform/config"
	apperrors "github.com/erwinjamescodes/sinotoriables/internal/platform/errors"
)

// --- Mock implementations ---

type mockAppService struct {
	listCandidatesFn  func(ctx context.Context) ([]domain.Candidate, error)
	getCandidateFn    func(ctx context.Context, candidateID int64) (*domain.Candidate, error)
	toggleLikeFn      func(ctx context.Context, candidateID int64, browserID domain.BrowserID) (*domain.ToggleResult, error)
	browserLikesFn    func(ctx context.Context, browserID domain.BrowserID, candidateIDs []int64) ([]int64, error)
	analyticsFn       func(ctx context.Context) (*domain.Analytics, error)
	createCandidateFn func(ctx context.Context, c domain.NewCandidate) (*domain.Candidate, error)
	updateCandidateFn func(ctx context.Context, candidateID int64, c domain.NewCandidate) (*domain.Candidate, error)
	deleteCandidateFn func(ctx context.Context, candidateID int64) error
}

func (m *mockAppService) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	if m.listCandidatesFn != nil {
		return m.listCandidatesFn(ctx)
	}
	return nil, nil
}

func (m *mockAppService) GetCandidate(ctx context.Context, candidateID int64) (*domain.Candidate, error) {
	if m.getCandidateFn != nil {
		return m.getCandidateFn(ctx, candidateID)
	}
	return nil, domain.ErrCandidateNotFound
}

func (m *mockAppService) ToggleLike(ctx context.Context, candidateID int64, browserID domain.BrowserID) (*domain.ToggleResult, error) {
	if m.toggleLikeFn != nil {
		return m.toggleLikeFn(ctx, candidateID, browserID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAppService) BrowserLikes(ctx context.Context, browserID domain.BrowserID, candidateIDs []int64) ([]int64, error) {
	if m.browserLikesFn != nil {
		return m.browserLikesFn(ctx, browserID, candidateIDs)
	}
	return nil, nil
}

func (m *mockAppService) Analytics(ctx context.Context) (*domain.Analytics, error) {
	if m.analyticsFn != nil {
		return m.analyticsFn(ctx)
	}
	return &domain.Analytics{}, nil
}

func (m *mockAppService) CreateCandidate(ctx context.Context, c domain.NewCandidate) (*domain.Candidate, error) {
	if m.createCandidateFn != nil {
		return m.createCandidateFn(ctx, c)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAppService) UpdateCandidate(ctx context.Context, candidateID int64, c domain.NewCandidate) (*domain.Candidate, error) {
	if m.updateCandidateFn != nil {
		return m.updateCandidateFn(ctx, candidateID, c)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAppService) DeleteCandidate(ctx context.Context, candidateID int64) error {
	if m.deleteCandidateFn != nil {
		return m.deleteCandidateFn(ctx, candidateID)
	}
	return nil
}

// --- Test helpers ---

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	store := sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!!"))
	store.Options = &sessions.Options{
		Path:   "/",
		MaxAge: 3600,
	}

	e := echo.New()

	srv := &Server{
		echo: e,
		config: &config.Config{
			AdminToken: "test-admin-token-16ch",
			MaxVotes:   12,
		},
		app:          app,
		identity:     identity.NewProvider(false),
		sessionStore: store,
	}

	for _, opt := range opts {
		opt(srv)
	}

	return srv
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return apperrors.Middleware()(handler)(c)
}

// adminSessionCookie mints a signed admin session cookie for test requests.
func adminSessionCookie(t *testing.T, srv *Server) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	session, err := srv.sessionStore.New(req, sessionName)
	require.NoError(t, err)
	session.Values[sessionKeyAdmin] = true
	require.NoError(t, session.Save(req, rec))

	return rec.Header().Get("Set-Cookie")
}
