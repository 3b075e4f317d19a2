package tui

import "github.com/custodia-labs/newsroom/internal/core/domain"

// SelectionKind identifies what the body shows.
type SelectionKind int

const (
	SelectionLoading SelectionKind = iota
	SelectionError
	SelectionHome
	SelectionCategory
	SelectionArticle
	SelectionContact
	SelectionPrivacy
)

// String returns the string representation of the kind.
func (k SelectionKind) String() string {
	switch k {
	case SelectionLoading:
		return "loading"
	case SelectionError:
		return "error"
	case SelectionHome:
		return "home"
	case SelectionCategory:
		return "category"
	case SelectionArticle:
		return "article"
	case SelectionContact:
		return "contact"
	case SelectionPrivacy:
		return "privacy"
	default:
		return "unknown"
	}
}

// PageSelection is the decision of what to place in the body.
type PageSelection struct {
	Kind SelectionKind

	// Message is set for SelectionError.
	Message string

	// Category is set for SelectionCategory.
	Category string

	// ArticleID is set for SelectionArticle.
	ArticleID string
}

// RenderPage decides the body content. A collection that is loading or
// failed hides every page; otherwise the view's tag picks the page.
func RenderPage(load domain.LoadState, view domain.ViewState) PageSelection {
	switch load.Status {
	case domain.LoadLoading:
		return PageSelection{Kind: SelectionLoading}
	case domain.LoadError:
		msg := load.Message
		if msg == "" {
			msg = domain.FetchFailedMessage
		}
		return PageSelection{Kind: SelectionError, Message: msg}
	}

	switch v := view.(type) {
	case domain.CategoryView:
		return PageSelection{Kind: SelectionCategory, Category: v.Name}
	case domain.ArticleView:
		return PageSelection{Kind: SelectionArticle, ArticleID: v.ID}
	case domain.ContactView:
		return PageSelection{Kind: SelectionContact}
	case domain.PrivacyView:
		return PageSelection{Kind: SelectionPrivacy}
	default:
		return PageSelection{Kind: SelectionHome}
	}
}
