package usecase

import (
	"errors"
	"fmt"

	"github.com/Bobur2828/Technical-assignment/internal/entity"
	"github.com/Bobur2828/Technical-assignment/internal/policy"
	"github.com/Bobur2828/Technical-assignment/internal/repo/persistent"
	"github.com/Bobur2828/Technical-assignment/pkg/logger"

	"gorm.io/gorm"
)

const maxTitleLength = 255

// ArticleUseCase orchestrates the policy engine and the article store.
// Every operation authorizes first and touches the store second.
type ArticleUseCase interface {
	ListArticles(p *entity.Principal) ([]*entity.ArticleView, error)
	ListOwn(p *entity.Principal) ([]*entity.ArticleView, error)
	CreateArticle(p *entity.Principal, title, content string, public bool) (*entity.ArticleView, error)
	GetForMutation(p *entity.Principal, articleID string) (*entity.Article, error)
	UpdateArticle(p *entity.Principal, articleID string, title, content *string, public *bool) (*entity.ArticleView, error)
	DeleteArticle(p *entity.Principal, articleID string) error
}

type articleUseCase struct {
	articleRepo persistent.ArticleRepository
	logger      *logger.Logger
}

func NewArticleUseCase(articleRepo persistent.ArticleRepository, logger *logger.Logger) ArticleUseCase {
	return &articleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

// ListArticles never fails with a denial: anonymous callers just get the
// public subset.
func (uc *articleUseCase) ListArticles(p *entity.Principal) ([]*entity.ArticleView, error) {
	var (
		articles []*entity.Article
		err      error
	)

	switch policy.VisibleScope(p) {
	case policy.VisibilityAll:
		articles, err = uc.articleRepo.ListAll()
	case policy.VisibilityPublicOnly:
		articles, err = uc.articleRepo.ListPublic()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	return toViews(articles), nil
}

// ListOwn returns the principal's articles for authors and an empty list for
// everyone else. Non-authors have no "own articles" view at all.
func (uc *articleUseCase) ListOwn(p *entity.Principal) ([]*entity.ArticleView, error) {
	if !policy.CanReadOwn(p) {
		return []*entity.ArticleView{}, nil
	}

	articles, err := uc.articleRepo.ListByAuthor(p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list own articles: %w", err)
	}

	return toViews(articles), nil
}

func (uc *articleUseCase) CreateArticle(p *entity.Principal, title, content string, public bool) (*entity.ArticleView, error) {
	if !policy.CanCreate(p) {
		return nil, &ForbiddenError{Message: "You do not have permission to create articles"}
	}

	if err := validateArticleFields(title, content); err != nil {
		return nil, err
	}

	// The author is always the requester; any client-supplied author id has
	// already been discarded at the boundary.
	article := &entity.Article{
		Title:    title,
		Content:  content,
		Public:   public,
		AuthorID: p.ID,
	}

	if err := uc.articleRepo.Create(article); err != nil {
		uc.logger.Error("Failed to create article: %v", err)
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return article.View(), nil
}

// GetForMutation resolves an article for update or delete. A missing row is
// NotFound with the ambiguous message; a row owned by someone else is
// Forbidden.
func (uc *articleUseCase) GetForMutation(p *entity.Principal, articleID string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}

	if !policy.CanModify(p, article) {
		return nil, &ForbiddenError{Message: "You do not have permission to modify this article"}
	}

	return article, nil
}

func (uc *articleUseCase) UpdateArticle(p *entity.Principal, articleID string, title, content *string, public *bool) (*entity.ArticleView, error) {
	article, err := uc.GetForMutation(p, articleID)
	if err != nil {
		return nil, err
	}

	// Second authorization checkpoint: fetch and mutate may drift apart in
	// future refactors, so the ownership rule is asserted at both.
	if !policy.CanModify(p, article) {
		return nil, &ForbiddenError{Message: "You do not have permission to modify this article"}
	}

	if title != nil {
		article.Title = *title
	}
	if content != nil {
		article.Content = *content
	}
	if public != nil {
		article.Public = *public
	}

	if err := validateArticleFields(article.Title, article.Content); err != nil {
		return nil, err
	}

	if err := uc.articleRepo.Update(article); err != nil {
		uc.logger.Error("Failed to update article: %v", err)
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	return article.View(), nil
}

func (uc *articleUseCase) DeleteArticle(p *entity.Principal, articleID string) error {
	article, err := uc.GetForMutation(p, articleID)
	if err != nil {
		return err
	}

	if !policy.CanDelete(p, article) {
		return &ForbiddenError{Message: "You do not have permission to delete this article"}
	}

	if err := uc.articleRepo.Delete(article.ID); err != nil {
		uc.logger.Error("Failed to delete article: %v", err)
		return fmt.Errorf("failed to delete article: %w", err)
	}

	return nil
}

func validateArticleFields(title, content string) error {
	if title == "" {
		return &ValidationError{Message: "Title is required"}
	}
	if len(title) > maxTitleLength {
		return &ValidationError{Message: "Title must be at most 255 characters"}
	}
	if content == "" {
		return &ValidationError{Message: "Content is required"}
	}
	return nil
}

func toViews(articles []*entity.Article) []*entity.ArticleView {
	views := make([]*entity.ArticleView, len(articles))
	for i := range articles {
		views[i] = articles[i].View()
	}
	return views
}
