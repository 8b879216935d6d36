package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"impacttracker/internal/donation"
	"impacttracker/internal/geo"
	"impacttracker/internal/utils"
	"impacttracker/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

// backendTimeout bounds each call to the data backend.
const backendTimeout = 5 * time.Second

// Backend is the data store behind the donation flow.
type Backend interface {
	FetchCharities(ctx context.Context) ([]*types.CharityWithStories, error)
	SubmitSuggestion(ctx context.Context, suggestion *types.CharitySuggestion) error
}

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	backend   Backend
	templates *template.Template
	cookie    *securecookie.SecureCookie
	reference geo.Point

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	backend Backend,
) (*Service, error) {
	mux := flow.New()

	cookie, err := newSecureCookie(config, logger)
	if err != nil {
		return nil, err
	}

	s := &Service{
		logger:    logger,
		config:    config,
		backend:   backend,
		cookie:    cookie,
		reference: geo.NewPoint(config.ReferenceLatitude, config.ReferenceLongitude),
	}

	// flow only runs middleware on matched routes, so trailing slashes are
	// handled ahead of the mux.
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.ServerPort),
		Handler:           s.StripTrailingSlash(mux),
		ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	if err := s.buildRouter(mux); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) error {
	r.Use(s.RequestID)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleGetDonation, http.MethodGet)
	r.HandleFunc("/", s.handlePostDonation, http.MethodPost)
	r.HandleFunc("/reset", s.handlePostReset, http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireDonation)

		r.HandleFunc("/impact", s.handleGetImpact, http.MethodGet)
		r.HandleFunc("/impact/markers", s.handleGetMarkers, http.MethodGet)
		r.HandleFunc("/charities/:id", s.handleGetCharity, http.MethodGet)
		r.HandleFunc("/suggest", s.handleGetSuggest, http.MethodGet)
		r.HandleFunc("/suggest", s.handlePostSuggest, http.MethodPost)
	})

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		return fmt.Errorf("failed to mount static assets: %w", err)
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)

	return nil
}

func newSecureCookie(config *types.Config, logger *logrus.Logger) (*securecookie.SecureCookie, error) {
	hashKey, err := base64.StdEncoding.DecodeString(config.CookieHashKey)
	if err != nil {
		return nil, fmt.Errorf("decode cookie hash key: %w", err)
	}
	blockKey, err := base64.StdEncoding.DecodeString(config.CookieBlockKey)
	if err != nil {
		return nil, fmt.Errorf("decode cookie block key: %w", err)
	}

	if len(hashKey) == 0 {
		logger.Warn("COOKIE_HASH_KEY not set, generating an ephemeral key; donations will not survive a restart")
		hashKey = securecookie.GenerateRandomKey(32)
	}
	if len(blockKey) == 0 {
		logger.Warn("COOKIE_BLOCK_KEY not set, generating an ephemeral key; donations will not survive a restart")
		blockKey = securecookie.GenerateRandomKey(32)
	}

	switch len(blockKey) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("cookie block key must be 16, 24 or 32 bytes, got %d", len(blockKey))
	}

	cookie := securecookie.New(hashKey, blockKey)
	cookie.MaxAge(config.CookieMaxAgeSec)

	return cookie, nil
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"pounds": formatPounds,
		"km":     formatKM,
		"noun":   donation.CharityNoun,
		"deref":  utils.PtrString,
		"sliderPercent": func(amount int) float64 {
			return float64(amount-types.MinDonationAmount) / float64(types.MaxDonationAmount-types.MinDonationAmount) * 100
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) donationFromContext(ctx context.Context) (types.DonationRecord, error) {
	record, ok := ctx.Value(contextKeyDonation).(types.DonationRecord)
	if !ok {
		return types.DonationRecord{}, fmt.Errorf("donation not found in context")
	}
	return record, nil
}
