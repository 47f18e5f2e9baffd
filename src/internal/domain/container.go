package domain

import (
	"net/http"

	"github.com/lojadigital/produtos/src/frontend"
	"github.com/lojadigital/produtos/src/internal/api"
	"github.com/lojadigital/produtos/src/internal/config"
	"github.com/lojadigital/produtos/src/internal/products"
	"github.com/lojadigital/produtos/src/internal/store"
)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// Usage:
//
//	deps := domain.NewAppDependenciesFromConfig(cfg)
//	router := deps.Router()
type AppDependencies struct {
	store    ProductStore
	policy   products.Policy
	frontend *frontend.Handler
	cors     bool
}

// AppConfig holds configuration for creating application dependencies.
type AppConfig struct {
	// DBFile is the JSON data file.
	DBFile string
	// IDStrategy picks how new ids are assigned.
	IDStrategy products.IDStrategy
	// InputMode picks how request bodies are read.
	InputMode products.Mode
	// Frontend configures the UI handler.
	Frontend frontend.Options
	// CORS enables cross-origin headers.
	CORS bool
}

// NewAppDependencies creates a new dependency container with production implementations.
func NewAppDependencies(cfg AppConfig) *AppDependencies {
	if cfg.IDStrategy == "" {
		cfg.IDStrategy = products.IDFromLast
	}
	if cfg.InputMode == "" {
		cfg.InputMode = products.ModeLenient
	}

	return &AppDependencies{
		store: store.New(cfg.DBFile),
		policy: products.Policy{
			Mode:       cfg.InputMode,
			IDStrategy: cfg.IDStrategy,
		},
		frontend: frontend.New(cfg.Frontend),
		cors:     cfg.CORS,
	}
}

// NewAppDependenciesFromConfig maps a loaded configuration onto the container.
func NewAppDependenciesFromConfig(cfg *config.Config) *AppDependencies {
	return NewAppDependencies(AppConfig{
		DBFile:     cfg.Storage.DBFile,
		IDStrategy: products.IDStrategy(cfg.Storage.IDStrategy),
		InputMode:  products.Mode(cfg.API.InputMode),
		Frontend: frontend.Options{
			UIPath: cfg.Frontend.UIPath,
			Title:  cfg.Frontend.Title,
			Dev:    cfg.Frontend.Dev,
		},
		CORS: cfg.Server.CORS,
	})
}

// NewTestDependencies creates a container around an existing store.
func NewTestDependencies(s ProductStore, policy products.Policy, fe *frontend.Handler) *AppDependencies {
	return &AppDependencies{store: s, policy: policy, frontend: fe}
}

// Store returns the product store.
func (d *AppDependencies) Store() ProductStore {
	return d.store
}

// Policy returns the create/update policy.
func (d *AppDependencies) Policy() products.Policy {
	return d.policy
}

// Frontend returns the UI handler. It must be prepared before serving.
func (d *AppDependencies) Frontend() *frontend.Handler {
	return d.frontend
}

// Router builds the HTTP handler for the API and UI.
func (d *AppDependencies) Router() http.Handler {
	var fe http.Handler
	if d.frontend != nil {
		fe = d.frontend
	}

	return api.NewRouter(api.Dependencies{
		Store:    d.store,
		Policy:   d.policy,
		Frontend: fe,
		CORS:     d.cors,
	})
}
