// Package static provides the bundled article dataset as a driven.ArticleSource.
//
// The dataset is a JSON array of articles compiled into the binary. A file
// with the same layout can be supplied instead (see source.dataset_path).
package static
