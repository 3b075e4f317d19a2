package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewState_Page(t *testing.T) {
	tests := []struct {
		view     ViewState
		expected Page
	}{
		{HomeView{}, PageHome},
		{CategoryView{Name: "Sports"}, PageCategory},
		{ArticleView{ID: "abc123"}, PageArticle},
		{ContactView{}, PageContact},
		{PrivacyView{}, PagePrivacy},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.Page())
			assert.True(t, tt.view.Page().IsValid())
		})
	}
}

func TestParseView(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		payload  string
		expected ViewState
	}{
		{name: "home", page: "home", expected: HomeView{}},
		{name: "category keeps payload", page: "category", payload: "Sports", expected: CategoryView{Name: "Sports"}},
		{name: "article keeps payload", page: "article", payload: "abc123", expected: ArticleView{ID: "abc123"}},
		{name: "contact ignores payload", page: "contact", payload: "x", expected: ContactView{}},
		{name: "privacy", page: "privacy", expected: PrivacyView{}},
		{name: "unknown falls back to home", page: "weather", payload: "x", expected: HomeView{}},
		{name: "empty falls back to home", page: "", expected: HomeView{}},
		{name: "category with empty payload", page: "category", expected: CategoryView{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseView(tt.page, tt.payload))
		})
	}
}

func TestDefaultView(t *testing.T) {
	assert.Equal(t, PageHome, DefaultView().Page())
}

func TestPageOf_Nil(t *testing.T) {
	assert.Equal(t, PageHome, PageOf(nil))
	assert.Equal(t, PageArticle, PageOf(ArticleView{ID: "x"}))
}

func TestLoadStatus(t *testing.T) {
	assert.Equal(t, "loading", LoadLoading.String())
	assert.Equal(t, "error", LoadError.String())
	assert.Equal(t, "ready", LoadReady.String())
	assert.False(t, LoadLoading.IsTerminal())
	assert.True(t, LoadError.IsTerminal())
	assert.True(t, LoadReady.IsTerminal())

	failed := Failed()
	assert.Equal(t, LoadError, failed.Status)
	assert.Equal(t, FetchFailedMessage, failed.Message)
	assert.Empty(t, Ready().Message)
	assert.Equal(t, LoadLoading, Loading().Status)
}
