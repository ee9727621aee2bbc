package entity

import "time"

type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Public    bool      `json:"public"`
	AuthorID  string    `json:"-"`
	Author    *User     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArticleView is the wire shape of an article. The author is exposed only
// by first name.
type ArticleView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Public          bool      `json:"public"`
	AuthorFirstName string    `json:"author_first_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (a *Article) View() *ArticleView {
	if a == nil {
		return nil
	}
	view := &ArticleView{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Public:    a.Public,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Author != nil {
		view.AuthorFirstName = a.Author.FirstName
	}
	return view
}
