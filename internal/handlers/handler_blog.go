package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/blog_api/internal/core/domain"
	portssvc "github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/SscSPs/blog_api/internal/dto"
	"github.com/SscSPs/blog_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

type blogHandler struct {
	blogService portssvc.BlogSvcFacade
}

func newBlogHandler(bs portssvc.BlogSvcFacade) *blogHandler {
	return &blogHandler{blogService: bs}
}

func registerBlogRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newBlogHandler(services.Blog)

	blogs := rg.Group("/blogs",
		middleware.Authenticate(services.Token),
		middleware.Authorize(services.Authorizer, domain.RoleAdmin, domain.RoleUser),
	)
	blogs.POST("", h.createBlog)
}

// createBlog godoc
// @Summary Create a blog
// @Description Creates a blog authored by the authenticated user. Content is sanitized and a slug is generated from the title.
// @Tags blogs
// @Accept json
// @Produce json
// @Param blog body dto.CreateBlogRequest true "Blog details"
// @Success 201 {object} dto.BlogEnvelope
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /blogs [post]
func (h *blogHandler) createBlog(c *gin.Context) {
	authorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	blog, err := h.blogService.CreateBlog(c.Request.Context(), req, authorID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Blog created",
		slog.String("blog_id", blog.BlogID),
		slog.String("slug", blog.Slug))
	c.JSON(http.StatusCreated, dto.BlogEnvelope{Message: "Blog created successfully", Code: "Created", Data: dto.ToBlogResponse(blog)})
}
