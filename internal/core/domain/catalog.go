package domain

// FilterByCategory returns the articles whose Category equals name.
// Matching is exact and case-sensitive. The input slice is not modified.
func FilterByCategory(articles []Article, name string) []Article {
	result := make([]Article, 0)
	for i := range articles {
		if articles[i].Category == name {
			result = append(result, articles[i])
		}
	}
	return result
}

// FindArticle returns the article with the given ID.
// Returns ErrNotFound if no article matches.
func FindArticle(articles []Article, id string) (*Article, error) {
	for i := range articles {
		if articles[i].ID == id {
			a := articles[i]
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

// Categories returns the distinct category names of the collection.
// Pinned names come first, in the given order, if at least one article uses them;
// the rest follow in order of first appearance. Empty categories are skipped.
func Categories(articles []Article, pinned []string) []string {
	present := make(map[string]bool)
	var appearance []string
	for i := range articles {
		c := articles[i].Category
		if c == "" || present[c] {
			continue
		}
		present[c] = true
		appearance = append(appearance, c)
	}

	result := make([]string, 0, len(appearance))
	seen := make(map[string]bool)
	for _, c := range pinned {
		if present[c] && !seen[c] {
			result = append(result, c)
			seen[c] = true
		}
	}
	for _, c := range appearance {
		if !seen[c] {
			result = append(result, c)
			seen[c] = true
		}
	}
	return result
}

// RelatedArticles returns up to limit other articles from the same category as a.
func RelatedArticles(articles []Article, a Article, limit int) []Article {
	if limit <= 0 {
		return nil
	}
	var result []Article
	for i := range articles {
		if articles[i].ID == a.ID || articles[i].Category != a.Category {
			continue
		}
		result = append(result, articles[i])
		if len(result) == limit {
			break
		}
	}
	return result
}
