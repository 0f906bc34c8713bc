package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/handler/prometheus"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/middleware"
	apperrors "github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/errors"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/httputil"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// FormHandler registers POST routes behind extra guards.
type FormHandler interface {
	RegisterRoutes(*gin.RouterGroup, ...gin.HandlerFunc)
}

type Router struct {
	engine    *gin.Engine
	config    RouterConfig
	locationH Handler
	catalogH  Handler
	doctorH   Handler
	contactH  FormHandler
	healthH   Handler
	metrics   *prometheus.Handler
}

type RouterConfig struct {
	RateLimitEnabled bool
	RateLimit        rate.Limit
	RateBurst        int
	CORSConfig       middleware.CORSConfig
	CacheMaxAge      int
	RequestTimeout   time.Duration
	// StaticDir is served for every GET that matches no route.
	StaticDir string
}

func NewRouter(
	locationH Handler,
	catalogH Handler,
	doctorH Handler,
	contactH FormHandler,
	healthH Handler,
	metrics *prometheus.Handler,
	config RouterConfig,
) *Router {
	engine := gin.New()

	r := &Router{
		engine:    engine,
		config:    config,
		locationH: locationH,
		catalogH:  catalogH,
		doctorH:   doctorH,
		contactH:  contactH,
		healthH:   healthH,
		metrics:   metrics,
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.ErrorLogger(),
		metrics.Middleware(),
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.CORS(config.CORSConfig),
		middleware.Deadline(config.RequestTimeout),
	)

	return r
}

func (r *Router) Setup() {
	root := r.engine.Group("")

	r.healthH.RegisterRoutes(root)
	root.GET("/metrics", r.metrics.Handler())

	api := r.engine.Group("")
	api.Use(middleware.CacheControl(r.config.CacheMaxAge))
	r.locationH.RegisterRoutes(api)
	r.catalogH.RegisterRoutes(api)
	r.doctorH.RegisterRoutes(api)

	guards := []gin.HandlerFunc{middleware.BodyLimit(middleware.DefaultMaxBodySize)}
	if r.config.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  r.config.RateLimit,
			Burst: r.config.RateBurst,
		})
		guards = append(guards, limiter.RateLimit())
	}
	// Job status changes after submission, so nothing here is cacheable.
	forms := r.engine.Group("")
	forms.Use(middleware.CacheControl(0))
	r.contactH.RegisterRoutes(forms, guards...)

	r.engine.NoRoute(middleware.CacheControl(r.config.CacheMaxAge), r.static())
}

// static serves the site's assets for unmatched GET and HEAD requests.
// Paths ending in /index.html are served in place instead of redirected.
func (r *Router) static() gin.HandlerFunc {
	root := http.Dir(r.config.StaticDir)
	files := http.FileServer(root)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			httputil.RespondWithError(c, apperrors.NotFound("route", nil))
			return
		}
		if strings.HasSuffix(c.Request.URL.Path, "/index.html") {
			serveFile(c, root)
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}

func serveFile(c *gin.Context, root http.FileSystem) {
	f, err := root.Open(c.Request.URL.Path)
	if err != nil {
		httputil.RespondWithError(c, apperrors.NotFound("file", err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		httputil.RespondWithError(c, apperrors.NotFound("file", err))
		return
	}
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

// Engine returns the configured gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
