package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"legalsite/internal/service"
)

// ListArticles returns all published articles, newest first.
//
// @Summary List blog articles
// @Tags blog
// @Produce json
// @Success 200 {array} model.Article
// @Router /api/blog [get]
func ListArticles(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		articles, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		// articles is never nil; an empty store serializes as [].
		return c.JSON(articles)
	}
}

// GetArticle returns a single article by id.
//
// @Summary Get a blog article
// @Tags blog
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} model.Article
// @Failure 404 {object} errorPayload
// @Router /api/blog/{id} [get]
func GetArticle(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		article, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "article not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(article)
	}
}
