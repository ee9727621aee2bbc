// Package policy is the access decision layer. Every function is pure: it
// looks only at the principal, the action, and the target article, and does
// no I/O. Callers fetch state first and ask here second.
package policy

import "github.com/Bobur2828/Technical-assignment/internal/entity"

// Visibility selects which slice of the article set a principal may list.
type Visibility int

const (
	// VisibilityPublicOnly limits the listing to public articles.
	VisibilityPublicOnly Visibility = iota
	// VisibilityAll grants the full listing, private articles included.
	VisibilityAll
)

// CanListAll reports whether the principal may list every article. Anonymous
// principals may still list, but only the public subset; that narrowing is a
// filter, not a denial.
func CanListAll(p *entity.Principal) bool {
	return p != nil
}

// VisibleScope maps a principal to the listing filter applied by the store.
func VisibleScope(p *entity.Principal) Visibility {
	if CanListAll(p) {
		return VisibilityAll
	}
	return VisibilityPublicOnly
}

// CanCreate reports whether the principal may create articles. Only
// authenticated authors may; followers and admins are read-side roles here.
func CanCreate(p *entity.Principal) bool {
	if p == nil {
		return false
	}
	switch p.Role {
	case entity.RoleAuthor:
		return true
	case entity.RoleFollower, entity.RoleAdmin:
		return false
	}
	return false
}

// CanReadOwn reports whether the principal has an "own articles" view.
// Non-authors get none at all: their listing is empty rather than denied.
func CanReadOwn(p *entity.Principal) bool {
	if p == nil {
		return false
	}
	switch p.Role {
	case entity.RoleAuthor:
		return true
	case entity.RoleFollower, entity.RoleAdmin:
		return false
	}
	return false
}

// CanModify reports whether the principal may change the article. Ownership
// is identity equality on user id, never email or name.
func CanModify(p *entity.Principal, article *entity.Article) bool {
	if p == nil || article == nil {
		return false
	}
	switch p.Role {
	case entity.RoleAuthor:
		return p.ID == article.AuthorID
	case entity.RoleFollower, entity.RoleAdmin:
		return false
	}
	return false
}

// CanDelete follows exactly the same rule as CanModify.
func CanDelete(p *entity.Principal, article *entity.Article) bool {
	return CanModify(p, article)
}
