package api

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	customerrors "github.com/axellelanca/linkboard/internal/errors"
	"github.com/axellelanca/linkboard/internal/services"
	"github.com/axellelanca/linkboard/internal/validation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// submitFormView is what submit.tmpl renders: the previous input and its errors.
type submitFormView struct {
	Old    services.Submission
	Errors validation.Errors
}

// NewRouter builds the gin engine with middleware and every route registered.
func NewRouter(linkService *services.LinkService, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(logger.Named("http")))
	SetupRoutes(router, linkService, logger)
	return router
}

// SetupRoutes configures all routes and injects their dependencies.
func SetupRoutes(router *gin.Engine, linkService *services.LinkService, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	router.SetHTMLTemplate(pageTemplates)

	router.GET("/health", HealthCheckHandler(linkService))

	// Browser-facing pages
	router.GET("/", ListLinksPageHandler(linkService, logger))
	router.GET("/submit", SubmitFormHandler())
	router.POST("/submit", SubmitLinkHandler(linkService, logger))

	api := router.Group("/api/v1")
	{
		api.POST("/links", CreateLinkHandler(linkService, logger))
		api.GET("/links", ListLinksHandler(linkService, logger))
		api.GET("/links/:id", GetLinkHandler(linkService, logger))
	}
}

// HealthCheckHandler reports service status along with the number of stored links.
func HealthCheckHandler(linkService *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := linkService.CountLinks(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "links": count})
	}
}

// ListLinksPageHandler renders the listing page, newest links first.
func ListLinksPageHandler(linkService *services.LinkService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		links, err := linkService.ListLinks(c.Request.Context())
		if err != nil {
			logger.Error("failed to list links", zap.Error(err))
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}
		c.HTML(http.StatusOK, "index.tmpl", gin.H{"Links": links})
	}
}

func SubmitFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "submit.tmpl", submitFormView{})
	}
}

// SubmitLinkHandler handles the form post. A valid link is stored and the
// browser redirected to the listing; otherwise the form is rendered again with
// the old input and one message per invalid field.
func SubmitLinkHandler(linkService *services.LinkService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub services.Submission
		if err := c.ShouldBind(&sub); err != nil {
			c.String(http.StatusBadRequest, "Invalid form submission")
			return
		}

		result, err := linkService.Submit(c.Request.Context(), sub)
		if err != nil {
			logger.Error("failed to submit link", zap.Error(err))
			c.String(http.StatusInternalServerError, "Failed to save link")
			return
		}

		if result.Rejected() {
			c.HTML(http.StatusUnprocessableEntity, "submit.tmpl", submitFormView{Old: sub, Errors: result.Errors})
			return
		}
		c.Redirect(http.StatusFound, result.Redirect)
	}
}

// CreateLinkHandler is the JSON counterpart of SubmitLinkHandler.
func CreateLinkHandler(linkService *services.LinkService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub services.Submission
		if err := c.ShouldBind(&sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}

		result, err := linkService.Submit(c.Request.Context(), sub)
		if err != nil {
			logger.Error("failed to create link", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save link"})
			return
		}

		if result.Rejected() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": result.Errors.Messages()})
			return
		}
		c.Header("Location", "/api/v1/links/"+strconv.FormatUint(uint64(result.Link.ID), 10))
		c.JSON(http.StatusCreated, result.Link)
	}
}

func ListLinksHandler(linkService *services.LinkService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		links, err := linkService.ListLinks(c.Request.Context())
		if err != nil {
			logger.Error("failed to list links", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"links": links})
	}
}

func GetLinkHandler(linkService *services.LinkService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid link id"})
			return
		}

		link, err := linkService.GetLink(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, customerrors.ErrLinkNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
				return
			}
			logger.Error("failed to get link", zap.Uint64("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, link)
	}
}
