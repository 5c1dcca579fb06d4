// Package httpapi exposes the REST surface of PhotoHub on a gin engine:
// auth, user, and photo routes plus the cookie-based auth middleware.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/photohub/photohub/internal/logging"
	"github.com/photohub/photohub/internal/server/photos"
	"github.com/photohub/photohub/internal/server/users"
)

// accessTokenCookie is the cookie carrying the session token.
const accessTokenCookie = "access_token"

const shutdownTimeout = 5 * time.Second

type Server struct {
	address       string
	engine        *gin.Engine
	logger        logging.Logger
	users         *users.Service
	photos        *photos.Service
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewServer(address string, l logging.Logger, us *users.Service, ps *photos.Service, secretKey string, tokenValidity time.Duration) *Server {
	s := &Server{
		address:       address,
		logger:        l.With("module", "http_server"),
		users:         us,
		photos:        ps,
		jwtSecret:     []byte(secretKey),
		tokenValidity: tokenValidity,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	s.registerRoutes(engine)
	s.engine = engine

	return s
}

// Engine exposes the underlying handler for tests.
func (s *Server) Engine() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes(engine *gin.Engine) {
	api := engine.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.POST("/sign-up", s.signUp)
	authRoutes.POST("/sign-in", s.signIn)
	authRoutes.POST("/google", s.google)
	authRoutes.POST("/sign-out", s.signOut)

	userRoutes := api.Group("/users")
	userRoutes.GET("/:id", s.getUser)
	userRoutes.PUT("/:id/update", s.requireAuth, s.updateUser)
	userRoutes.DELETE("/:id/delete", s.requireAuth, s.deleteUser)

	photoRoutes := api.Group("/photos")
	photoRoutes.GET("", s.listPhotos)
	photoRoutes.GET("/:id", s.getPhoto)
	photoRoutes.POST("/create", s.requireAuth, s.createPhoto)
	photoRoutes.POST("/upload-url", s.requireAuth, s.newUploadURL)
	photoRoutes.PUT("/:id", s.requireAuth, s.updatePhoto)
	photoRoutes.DELETE("/:id", s.requireAuth, s.deletePhoto)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
