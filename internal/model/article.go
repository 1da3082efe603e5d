package model

import "time"

// Article is a published blog post on the practice's website.
// Articles are created out-of-band (seed or admin tooling) and are
// read-only for the lifetime of the process; the HTTP API exposes no
// write path for them.
type Article struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Author        string    `json:"author"`
	PublishedDate time.Time `json:"published_date"`
	ReadTime      int       `json:"read_time"`
}
