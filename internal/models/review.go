package models

import "time"

// Review is a single product review. Reviews are grouped per product id in
// the reviews collection.
type Review struct {
	ID      string    `json:"id"`
	Rating  int       `json:"rating"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	Helpful int       `json:"helpful"`
}

// ReviewSummary aggregates the reviews of one product: the mean rating and a
// per-star histogram (index 0 holds one-star counts).
type ReviewSummary struct {
	Count      int
	Average    float64
	StarCounts [5]int
}
