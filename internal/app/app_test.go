package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/acordos/internal/domain"
)

type ApplicationSuite struct {
	suite.Suite
	sessionFile string
	out         *bytes.Buffer
	errOut      *bytes.Buffer
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.sessionFile = filepath.Join(s.T().TempDir(), "token")
	s.T().Setenv("ACORDOS_SESSION_FILE", s.sessionFile)
	for _, name := range []string{"ACORDOS_API_URL", "LOG_LVL", "ACORDOS_LOG_FILE"} {
		s.T().Setenv(name, "")
		s.Require().NoError(os.Unsetenv(name))
	}
	s.out = &bytes.Buffer{}
	s.errOut = &bytes.Buffer{}
}

func (s *ApplicationSuite) newApp(input string, args ...string) *Application {
	return New(args, strings.NewReader(input), s.out, s.errOut)
}

func (s *ApplicationSuite) backend() *httptest.Server {
	r := chi.NewRouter()
	r.Get("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.User{ID: "u1", Email: "maria@example.com", FullName: "Maria Souza"})
	})
	srv := httptest.NewServer(r)
	s.T().Cleanup(srv.Close)
	return srv
}

func (s *ApplicationSuite) TestStart() {
	app := s.newApp("", "-a", "example.test:9000", "whoami")

	s.Require().NoError(app.Start(context.Background()))
	s.Equal("http://example.test:9000/api", app.cfg.APIURL)
	s.Equal(s.sessionFile, app.cfg.SessionFile)
	s.NotNil(app.console)
	s.NotNil(app.root)
}

func (s *ApplicationSuite) TestStartBadLogLevel() {
	app := s.newApp("", "--log-level", "loud", "cases")

	err := app.Start(context.Background())
	s.Require().Error(err)
	s.Contains(err.Error(), "can't init logger")
}

func (s *ApplicationSuite) TestRunNotStarted() {
	s.ErrorIs(s.newApp("").Run(context.Background()), errNotStarted)
}

func (s *ApplicationSuite) TestRunWithStoredSession() {
	s.Require().NoError(os.WriteFile(s.sessionFile, []byte("tok\n"), 0o600))
	srv := s.backend()
	app := s.newApp("", "--api", srv.URL, "whoami")

	s.Require().NoError(app.Start(context.Background()))
	s.Require().NoError(app.Run(context.Background()))
	s.Contains(s.out.String(), "Maria Souza")
}

func (s *ApplicationSuite) TestRunExpiredSession() {
	s.Require().NoError(os.WriteFile(s.sessionFile, []byte("stale"), 0o600))
	srv := s.backend()
	app := s.newApp("", "--api", srv.URL, "whoami")

	s.Require().NoError(app.Start(context.Background()))
	s.Require().Error(app.Run(context.Background()))
	s.Contains(s.errOut.String(), "Session expired")

	_, err := os.Stat(s.sessionFile)
	s.True(os.IsNotExist(err), "session file should be removed")
}

func (s *ApplicationSuite) TestRunGuardAsksToSignIn() {
	srv := s.backend()
	app := s.newApp("", "--api", srv.URL, "cases")

	s.Require().NoError(app.Start(context.Background()))
	s.Require().Error(app.Run(context.Background()))
	s.Contains(s.errOut.String(), "Sign in to continue")
	s.Contains(s.out.String(), "Email:")
}
