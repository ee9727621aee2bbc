package http

import (
	"net/http"

	"github.com/Bobur2828/Technical-assignment/internal/usecase"
	"github.com/Bobur2828/Technical-assignment/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleUseCase usecase.ArticleUseCase
	logger         *logger.Logger
}

func NewArticleHandler(articleUseCase usecase.ArticleUseCase, logger *logger.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleUseCase: articleUseCase,
		logger:         logger,
	}
}

// CreateArticleRequest deliberately has no author field: the author is
// always the authenticated requester.
type CreateArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Public  bool   `json:"public"`
}

type UpdateArticleRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Public  *bool   `json:"public"`
}

// ListAll godoc
// @Summary      List articles
// @Description  Authenticated callers see every article; anonymous callers see public ones only
// @Tags         articles
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /view_all_articles/ [get]
func (h *ArticleHandler) ListAll(c *gin.Context) {
	articles, err := h.articleUseCase.ListArticles(principalFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"articles": articles})
}

// ListOwn godoc
// @Summary      List own articles
// @Description  Authors get their articles; other roles get an empty list
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /my_articles/ [get]
func (h *ArticleHandler) ListOwn(c *gin.Context) {
	articles, err := h.articleUseCase.ListOwn(principalFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"articles": articles})
}

// Create godoc
// @Summary      Create an article
// @Description  Authors only; the article is owned by the requester regardless of input
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateArticleRequest true "Article fields"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /my_articles/ [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	article, err := h.articleUseCase.CreateArticle(principalFromContext(c), req.Title, req.Content, req.Public)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"article": article})
}

// Get godoc
// @Summary      Get one of your articles
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /my_articles/{id}/ [get]
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.articleUseCase.GetForMutation(principalFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"article": article.View()})
}

// Update godoc
// @Summary      Update one of your articles
// @Description  Partial update; absent fields are left unchanged
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Param        request body UpdateArticleRequest true "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /my_articles/{id}/ [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	article, err := h.articleUseCase.UpdateArticle(principalFromContext(c), c.Param("id"), req.Title, req.Content, req.Public)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"article": article})
}

// Delete godoc
// @Summary      Delete one of your articles
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      204  "No Content"
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /my_articles/{id}/ [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.articleUseCase.DeleteArticle(principalFromContext(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	// net/http never writes a body on 204, so the response is status-only.
	c.Status(http.StatusNoContent)
}
