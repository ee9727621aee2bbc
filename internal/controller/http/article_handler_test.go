package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Bobur2828/Technical-assignment/internal/entity"
	"github.com/Bobur2828/Technical-assignment/internal/usecase"
	"github.com/Bobur2828/Technical-assignment/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockArticleUseCase is a mock implementation of usecase.ArticleUseCase
type MockArticleUseCase struct {
	mock.Mock
}

func (m *MockArticleUseCase) ListArticles(p *entity.Principal) ([]*entity.ArticleView, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ArticleView), args.Error(1)
}

func (m *MockArticleUseCase) ListOwn(p *entity.Principal) ([]*entity.ArticleView, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ArticleView), args.Error(1)
}

func (m *MockArticleUseCase) CreateArticle(p *entity.Principal, title, content string, public bool) (*entity.ArticleView, error) {
	args := m.Called(p, title, content, public)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ArticleView), args.Error(1)
}

func (m *MockArticleUseCase) GetForMutation(p *entity.Principal, articleID string) (*entity.Article, error) {
	args := m.Called(p, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) UpdateArticle(p *entity.Principal, articleID string, title, content *string, public *bool) (*entity.ArticleView, error) {
	args := m.Called(p, articleID, title, content, public)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ArticleView), args.Error(1)
}

func (m *MockArticleUseCase) DeleteArticle(p *entity.Principal, articleID string) error {
	args := m.Called(p, articleID)
	return args.Error(0)
}

var _ usecase.ArticleUseCase = (*MockArticleUseCase)(nil)

func asAuthor(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "author-1")
		c.Set("user_role", "author")
		handler(c)
	}
}

func asFollower(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "follower-1")
		c.Set("user_role", "follower")
		handler(c)
	}
}

func authorP() *entity.Principal {
	return &entity.Principal{ID: "author-1", Role: entity.RoleAuthor}
}

func TestListAll_Anonymous(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/view_all_articles/", handler.ListAll)

	mockUseCase.On("ListArticles", (*entity.Principal)(nil)).Return([]*entity.ArticleView{
		{ID: "art-1", Title: "Public one", Public: true, AuthorFirstName: "Alice"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/view_all_articles/", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "success", response["status"])
	data := response["data"].(map[string]interface{})
	articles := data["articles"].([]interface{})
	assert.Len(t, articles, 1)
	first := articles[0].(map[string]interface{})
	assert.Equal(t, "Alice", first["author_first_name"])

	mockUseCase.AssertExpectations(t)
}

func TestListAll_Authenticated(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/view_all_articles/", asFollower(handler.ListAll))

	mockUseCase.On("ListArticles", &entity.Principal{ID: "follower-1", Role: entity.RoleFollower}).
		Return([]*entity.ArticleView{{ID: "art-1"}, {ID: "art-2"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/view_all_articles/", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListOwn_ReturnsArticles(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/my_articles/", asAuthor(handler.ListOwn))

	mockUseCase.On("ListOwn", authorP()).Return([]*entity.ArticleView{{ID: "art-1"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/my_articles/", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"success"`)
}

func TestCreate_Created(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/my_articles/", asAuthor(handler.Create))

	mockUseCase.On("CreateArticle", authorP(), "Title", "Content", true).Return(&entity.ArticleView{
		ID:              "art-1",
		Title:           "Title",
		Content:         "Content",
		Public:          true,
		AuthorFirstName: "Alice",
	}, nil)

	body := `{"title":"Title","content":"Content","public":true}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/my_articles/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]interface{})
	article := data["article"].(map[string]interface{})
	assert.Equal(t, "Alice", article["author_first_name"])
}

func TestCreate_ClientSuppliedAuthorIsIgnored(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/my_articles/", asAuthor(handler.Create))

	// The usecase must be called with the requester's principal even though
	// the payload names a different author.
	mockUseCase.On("CreateArticle", authorP(), "Title", "Content", false).
		Return(&entity.ArticleView{ID: "art-1", Title: "Title"}, nil)

	body := `{"title":"Title","content":"Content","public":false,"author":"somebody-else"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/my_articles/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreate_ForbiddenForFollower(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/my_articles/", asFollower(handler.Create))

	mockUseCase.On("CreateArticle", mock.Anything, "Title", "Content", true).
		Return(nil, &usecase.ForbiddenError{Message: "You do not have permission to create articles"})

	body := `{"title":"Title","content":"Content","public":true}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/my_articles/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"fail"`)
	assert.Contains(t, w.Body.String(), "You do not have permission to create articles")
}

func TestCreate_ValidationError(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/my_articles/", asAuthor(handler.Create))

	mockUseCase.On("CreateArticle", authorP(), "", "Content", false).
		Return(nil, &usecase.ValidationError{Message: "Title is required"})

	body := `{"content":"Content"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/my_articles/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title is required")
}

func TestGet_NotFoundMessageStaysAmbiguous(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/my_articles/:id/", asAuthor(handler.Get))

	mockUseCase.On("GetForMutation", authorP(), "missing").Return(nil, usecase.ErrArticleNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/my_articles/missing/", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Article not found or it does not belong to you.")
}

func TestGet_ForbiddenForOtherAuthor(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/my_articles/:id/", asAuthor(handler.Get))

	mockUseCase.On("GetForMutation", authorP(), "art-9").
		Return(nil, &usecase.ForbiddenError{Message: "You do not have permission to modify this article"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/my_articles/art-9/", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdate_Success(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/my_articles/:id/", asAuthor(handler.Update))

	title := "New title"
	mockUseCase.On("UpdateArticle", authorP(), "art-1", &title, (*string)(nil), (*bool)(nil)).
		Return(&entity.ArticleView{ID: "art-1", Title: "New title"}, nil)

	body := `{"title":"New title"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/my_articles/art-1/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New title")
	mockUseCase.AssertExpectations(t)
}

func TestDelete_NoContentEmptyBody(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/my_articles/:id/", asAuthor(handler.Delete))

	mockUseCase.On("DeleteArticle", authorP(), "art-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/my_articles/art-1/", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	// A 204 carries no body at the protocol level; deletion is signalled by
	// the status alone
	assert.Empty(t, w.Body.String())
	mockUseCase.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/my_articles/:id/", asAuthor(handler.Delete))

	mockUseCase.On("DeleteArticle", authorP(), "missing").Return(usecase.ErrArticleNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/my_articles/missing/", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Article not found or it does not belong to you.")
}

func TestUnexpectedErrorBecomesGeneric500(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/view_all_articles/", handler.ListAll)

	mockUseCase.On("ListArticles", (*entity.Principal)(nil)).Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/view_all_articles/", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	// The underlying failure never leaks to the client
	assert.NotContains(t, w.Body.String(), "connection refused")
}
