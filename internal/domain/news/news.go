// Package news defines news article models.
package news

// Item represents a news article.
type Item struct {
	ID       int
	Title    string
	Body     string
	Date     string
	ImageRef string
}

// Summary is a highlighted entry of the home screen carousel.
type Summary struct {
	ID       int
	Title    string
	ImageRef string
}
