package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/solgate/solgate/internal/api"
	apihandlers "github.com/solgate/solgate/internal/api/handlers"
	"github.com/solgate/solgate/internal/config"
	"github.com/solgate/solgate/internal/crypto"
	"github.com/solgate/solgate/internal/ledger"
	"github.com/solgate/solgate/internal/logger"
	"github.com/solgate/solgate/internal/server/handlers"
	solgatemiddleware "github.com/solgate/solgate/internal/server/middleware"
	"github.com/solgate/solgate/internal/version"
)

type Server struct {
	config  *config.ServerEnvironment
	logger  *slog.Logger
	router  *chi.Mux
	service *ledger.Service
	jwkSet  jwk.Set
}

// NewServer creates the HTTP server. signer is the key that pays for and signs submitted
// transactions and may be nil; it is published at /.well-known/jwks.json.
func NewServer(
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
	client ledger.Client,
	signer solana.PrivateKey,
) (*Server, error) {
	var signers []solana.PrivateKey
	if len(signer) > 0 {
		signers = append(signers, signer)
	}
	jwkSet, err := crypto.PublicJWKSet(signers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWK set for the signer key: %w", err)
	}

	server := &Server{
		config:  cfg,
		logger:  logger,
		router:  chi.NewRouter(),
		service: ledger.NewService(client, signer, logger),
		jwkSet:  jwkSet,
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server, nil
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(solgatemiddleware.Tracing)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(solgatemiddleware.Metrics)
	s.router.Use(solgatemiddleware.Recoverer)
	s.router.Use(solgatemiddleware.SecurityHeaders(s.config.Environment))
	s.router.Use(solgatemiddleware.CORS(s.config.AllowedOrigins))
	s.router.Use(solgatemiddleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
	s.router.Use(solgatemiddleware.RequestSizeLimit(s.config.MaxRequestBodyBytes))
	s.router.Use(middleware.Timeout(s.config.HandlerTimeout))
}

func (s *Server) registerRoutes() {
	tokenHandler := apihandlers.NewTokenHandler(s.service)
	accountHandler := apihandlers.NewAccountHandler(s.service, s.config.AirdropLamports)
	transferHandler := apihandlers.NewTransferHandler(s.service)

	s.router.Post("/keypair", apihandlers.HandleGenerateKeypair)

	s.router.Route("/token", func(r chi.Router) {
		r.Post("/create", tokenHandler.HandleCreateToken)
		r.Post("/mint", tokenHandler.HandleMintToken)
	})

	s.router.Route("/message", func(r chi.Router) {
		r.Post("/sign", apihandlers.HandleSignMessage)
		r.Post("/verify", apihandlers.HandleVerifyMessage)
	})
	s.router.Post("/verify", apihandlers.HandleVerifyMessage)

	s.router.Get("/balance/{pubkey}", accountHandler.HandleBalance)
	s.router.Get("/airdrop/{pubkey}", accountHandler.HandleAirdrop)
	s.router.Post("/user/airdrop", accountHandler.HandleUserAirdrop)

	s.router.Post("/send/token", transferHandler.HandleSendToken)

	// infrastructure
	s.router.Get("/health", handlers.HandleHealth)
	s.router.Get("/ready", handlers.HandleReadiness(s.service))
	s.router.Get("/version", handlers.HandleVersion(version.Get()))
	s.router.Get("/.well-known/jwks.json", handlers.HandleJWKS(s.jwkSet))
	s.router.Get("/swagger/doc.json", handlers.HandleSwaggerDoc)
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.RespondWithErrorResponse(w, r, api.NewNotFoundError(fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path)))
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.RespondWithErrorResponse(w, r, api.NewMethodNotAllowedError(fmt.Sprintf("method %s is not allowed for %s", r.Method, r.URL.Path)))
	})
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	serverAddr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	httpServer := &http.Server{
		Addr:         serverAddr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("environment", s.config.Environment),
			slog.String("address", serverAddr))

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
