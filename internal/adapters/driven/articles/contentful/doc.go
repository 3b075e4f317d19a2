// Package contentful reads articles from the Contentful Content Delivery API.
//
// Entries of the configured content type are fetched page by page until
// the reported total is reached. Linked image assets are resolved from
// the response includes and rich-text bodies are mapped onto the domain
// node tree.
//
// Expected entry fields:
//
//	title     Symbol      required
//	category  Symbol      required
//	summary   Text
//	content   RichText or Text
//	author    Symbol
//	date      Date
//	image     Link to Asset
package contentful
