package persistent

import (
	"github.com/Bobur2828/Technical-assignment/internal/entity"
	"github.com/Bobur2828/Technical-assignment/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	ListAll() ([]*entity.Article, error)
	ListPublic() ([]*entity.Article, error)
	ListByAuthor(authorID string) ([]*entity.Article, error)
	Update(article *entity.Article) error
	Delete(id string) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *entity.Article) error {
	articleModel := ToArticleModel(article)
	if articleModel.ID == "" {
		articleModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(articleModel).Error; err != nil {
			return err
		}
		if err := tx.Preload("Author").First(articleModel, "id = ?", articleModel.ID).Error; err != nil {
			return err
		}
		*article = *ToArticleEntity(articleModel)
		return nil
	})
}

func (r *articleRepository) GetByID(id string) (*entity.Article, error) {
	var articleModel model.ArticleModel
	if err := r.db.Preload("Author").Where("id = ?", id).First(&articleModel).Error; err != nil {
		return nil, err
	}
	return ToArticleEntity(&articleModel), nil
}

func (r *articleRepository) ListAll() ([]*entity.Article, error) {
	return r.list(r.db)
}

func (r *articleRepository) ListPublic() ([]*entity.Article, error) {
	return r.list(r.db.Where("public = ?", true))
}

func (r *articleRepository) ListByAuthor(authorID string) ([]*entity.Article, error) {
	return r.list(r.db.Where("author_id = ?", authorID))
}

func (r *articleRepository) list(query *gorm.DB) ([]*entity.Article, error) {
	var articleModels []model.ArticleModel
	if err := query.Preload("Author").Order("created_at DESC").Find(&articleModels).Error; err != nil {
		return nil, err
	}

	articles := make([]*entity.Article, len(articleModels))
	for i := range articleModels {
		articles[i] = ToArticleEntity(&articleModels[i])
	}
	return articles, nil
}

func (r *articleRepository) Update(article *entity.Article) error {
	articleModel := ToArticleModel(article)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ArticleModel{}).Where("id = ?", articleModel.ID).Updates(map[string]interface{}{
			"title":   articleModel.Title,
			"content": articleModel.Content,
			"public":  articleModel.Public,
		}).Error; err != nil {
			return err
		}
		if err := tx.Preload("Author").First(articleModel, "id = ?", articleModel.ID).Error; err != nil {
			return err
		}
		*article = *ToArticleEntity(articleModel)
		return nil
	})
}

func (r *articleRepository) Delete(id string) error {
	return r.db.Delete(&model.ArticleModel{}, "id = ?", id).Error
}
