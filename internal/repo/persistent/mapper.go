package persistent

import (
	"github.com/Bobur2828/Technical-assignment/internal/entity"
	"github.com/Bobur2828/Technical-assignment/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		Email:       m.Email,
		FirstName:   m.FirstName,
		Password:    m.Password,
		Role:        entity.Role(m.Role),
		IsStaff:     m.IsStaff,
		IsSuperuser: m.IsSuperuser,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:          e.ID,
		Email:       e.Email,
		FirstName:   e.FirstName,
		Password:    e.Password,
		Role:        string(e.Role),
		IsStaff:     e.IsStaff,
		IsSuperuser: e.IsSuperuser,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToArticleEntity(m *model.ArticleModel) *entity.Article {
	if m == nil {
		return nil
	}

	return &entity.Article{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Public:    m.Public,
		AuthorID:  m.AuthorID,
		Author:    ToUserEntity(m.Author),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToArticleModel(e *entity.Article) *model.ArticleModel {
	if e == nil {
		return nil
	}

	return &model.ArticleModel{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		Public:    e.Public,
		AuthorID:  e.AuthorID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
