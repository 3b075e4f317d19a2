package contentful

import "encoding/json"

// entryCollection is the response body of GET /entries.
type entryCollection struct {
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
	Items    []entry  `json:"items"`
	Includes includes `json:"includes"`
}

type sys struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	// LinkType is set on links ("Asset", "Entry").
	LinkType string `json:"linkType,omitempty"`
}

type entry struct {
	Sys    sys         `json:"sys"`
	Fields entryFields `json:"fields"`
}

type entryFields struct {
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Author   string          `json:"author"`
	Date     string          `json:"date"`
	Summary  string          `json:"summary"`
	Content  json.RawMessage `json:"content"`
	Image    *link           `json:"image"`
}

type link struct {
	Sys sys `json:"sys"`
}

type includes struct {
	Asset []asset `json:"Asset"`
}

type asset struct {
	Sys    sys `json:"sys"`
	Fields struct {
		Title string `json:"title"`
		File  struct {
			URL         string `json:"url"`
			ContentType string `json:"contentType"`
		} `json:"file"`
	} `json:"fields"`
}

// errorBody is the body of a non-2xx response.
type errorBody struct {
	Sys     sys    `json:"sys"`
	Message string `json:"message"`
}

// richNode is a rich-text node as delivered by the API.
type richNode struct {
	NodeType string `json:"nodeType"`
	Value    string `json:"value"`
	Marks    []struct {
		Type string `json:"type"`
	} `json:"marks"`
	Data struct {
		URI string `json:"uri"`
	} `json:"data"`
	Content []richNode `json:"content"`
}
