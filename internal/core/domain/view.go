package domain

// Page identifies which page a ViewState displays.
type Page string

// Known pages.
const (
	PageHome     Page = "home"
	PageCategory Page = "category"
	PageArticle  Page = "article"
	PageContact  Page = "contact"
	PagePrivacy  Page = "privacy"
)

// IsValid returns true if the page is one of the known pages.
func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageCategory, PageArticle, PageContact, PagePrivacy:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Page) String() string {
	return string(p)
}

// ViewState describes the page on screen and any key it needs.
// Each variant carries its own typed payload; the set of variants is closed.
type ViewState interface {
	// Page returns the tag of the variant.
	Page() Page

	viewState()
}

// HomeView shows the home feed.
type HomeView struct{}

// CategoryView lists the articles of one category.
type CategoryView struct {
	// Name is matched exactly against Article.Category.
	Name string
}

// ArticleView shows a single article.
type ArticleView struct {
	// ID is looked up against Article.ID.
	ID string
}

// ContactView shows the contact page.
type ContactView struct{}

// PrivacyView shows the privacy policy.
type PrivacyView struct{}

func (HomeView) Page() Page     { return PageHome }
func (CategoryView) Page() Page { return PageCategory }
func (ArticleView) Page() Page  { return PageArticle }
func (ContactView) Page() Page  { return PageContact }
func (PrivacyView) Page() Page  { return PagePrivacy }

func (HomeView) viewState()     {}
func (CategoryView) viewState() {}
func (ArticleView) viewState()  {}
func (ContactView) viewState()  {}
func (PrivacyView) viewState()  {}

// DefaultView is the view shown at startup.
func DefaultView() ViewState {
	return HomeView{}
}

// ParseView builds a ViewState from an untyped tag and payload.
// Unknown tags fall back to the home view. The payload is used verbatim.
func ParseView(page, payload string) ViewState {
	switch Page(page) {
	case PageCategory:
		return CategoryView{Name: payload}
	case PageArticle:
		return ArticleView{ID: payload}
	case PageContact:
		return ContactView{}
	case PagePrivacy:
		return PrivacyView{}
	default:
		return HomeView{}
	}
}

// PageOf returns the tag of v, treating nil as home.
func PageOf(v ViewState) Page {
	if v == nil {
		return PageHome
	}
	return v.Page()
}
