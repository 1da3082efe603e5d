package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"legalsite/internal/model"
	"legalsite/internal/repository"
)

// sampleArticles are the initial legal-awareness posts inserted on first
// startup so the site never launches with an empty blog.
func sampleArticles(now time.Time) []model.Article {
	return []model.Article{
		{
			ID:            uuid.NewString(),
			Title:         "Understanding Your Legal Rights in Civil Disputes",
			Excerpt:       "An informative guide on civil rights and legal procedures that every citizen should be aware of.",
			Content:       "Civil disputes can arise in various situations, from property matters to contractual disagreements. Understanding your legal rights is the first step toward resolving such issues effectively. This article provides an overview of the legal framework governing civil disputes in India, the role of courts, and the importance of proper documentation. Remember, legal awareness is your best defense.",
			Category:      "Civil Law",
			Author:        "Legal Awareness",
			PublishedDate: now,
			ReadTime:      5,
		},
		{
			ID:            uuid.NewString(),
			Title:         "Corporate Compliance: Key Legal Requirements for Businesses",
			Excerpt:       "Essential information about corporate legal compliance that business owners must know.",
			Content:       "Corporate compliance involves adhering to laws, regulations, and ethical practices. This article covers key legal requirements including company registration, tax compliance, labor laws, and regulatory filings. Understanding these obligations helps businesses operate smoothly and avoid legal complications. Proper legal guidance ensures your business remains compliant with all applicable laws.",
			Category:      "Corporate Law",
			Author:        "Legal Awareness",
			PublishedDate: now,
			ReadTime:      6,
		},
		{
			ID:            uuid.NewString(),
			Title:         "Family Law Basics: Rights and Responsibilities",
			Excerpt:       "Learn about family law matters including marriage, divorce, and custody rights in India.",
			Content:       "Family law encompasses various personal matters including marriage, divorce, child custody, and property rights. This informational article outlines the basic legal framework governing family matters in India. Understanding these laws helps individuals make informed decisions during challenging times. Legal awareness in family matters is crucial for protecting your rights and those of your loved ones.",
			Category:      "Family Law",
			Author:        "Legal Awareness",
			PublishedDate: now,
			ReadTime:      5,
		},
	}
}

// EnsureBlogSeeded inserts the sample articles when the store is empty.
// Articles are otherwise provisioned out-of-band; this only guards the
// very first startup. Returns the number of articles inserted.
func EnsureBlogSeeded(ctx context.Context, repo repository.ArticleRepository) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	inserted := 0
	for _, a := range sampleArticles(time.Now().UTC()) {
		article := a
		if _, err := repo.Create(ctx, &article); err != nil {
			return inserted, fmt.Errorf("seed article %q: %w", a.Title, err)
		}
		inserted++
	}
	return inserted, nil
}
