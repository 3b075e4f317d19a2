package tui

import "errors"

// ErrMissingArticleService is returned when the article service is not provided.
var ErrMissingArticleService = errors.New("tui: article service is required")

// ErrMissingNavigator is returned when the navigator is not provided.
var ErrMissingNavigator = errors.New("tui: navigator is required")
