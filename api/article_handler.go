package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jaipongz/site-backend/database"
	"github.com/jaipongz/site-backend/errs"
	"github.com/jaipongz/site-backend/models"
	"github.com/jaipongz/site-backend/storage"
)

type articleHandler struct {
	responder   Responder
	logger      zerolog.Logger
	articleRepo *database.ContentRepo[models.Article]
}

func newArticleHandler(articleRepo *database.ContentRepo[models.Article]) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		articleRepo: articleRepo,
	}
}

// getAllArticles retrieves all articles, newest first
// @Summary Get all articles
// @Description Retrieves all articles ordered by creation date descending
// @Tags Articles
// @Produce json
// @Success 200 {array} models.Article "List of articles"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching articles"
// @Router /articles [get]
func (h articleHandler) getAllArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := h.articleRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find articles", "articles", err))
			return
		}

		if articles == nil {
			articles = []models.Article{}
		}
		h.responder.WriteJSON(w, articles)
	}
}

// getArticle retrieves a single article by ID
// @Summary Get article
// @Description Retrieves a single article by its ID
// @Tags Articles
// @Produce json
// @Param articleID path int true "Article ID"
// @Success 200 {object} models.Article "Article details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid articleID"
// @Failure 404 {object} ErrorResponse "Not Found - Article not found"
// @Router /articles/{articleID} [get]
func (h articleHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := parseID(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article, err := h.articleRepo.FindByID(articleID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find article", "article", err))
			return
		}

		if article == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Article not found"))
			return
		}

		h.responder.WriteJSON(w, article)
	}
}

// createArticle creates a new article from a multipart form
// @Summary Create article
// @Description Creates a new article; an optional thumbnail file is stored and referenced by relative path
// @Tags Articles
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param content formData string false "Body content"
// @Param thumbnail formData file false "Thumbnail image"
// @Success 201 {object} CreatedResponse "Created article id"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing required field"
// @Failure 413 {object} ErrorResponse "Payload Too Large - Upload exceeds size ceiling"
// @Failure 415 {object} ErrorResponse "Unsupported Media Type - Not an image"
// @Router /articles [post]
func (h articleHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipartForm(w, r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		title := r.FormValue("title")
		description := r.FormValue("description")
		if title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}

		thumbnail, uploaded, err := resolveImage(r, "thumbnail")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article := models.Article{
			Thumbnail:   thumbnail,
			Title:       title,
			Description: description,
			Content:     r.FormValue("content"),
		}

		if err := h.articleRepo.Add(&article); err != nil {
			if uploaded {
				if rmErr := storage.Remove(*thumbnail); rmErr != nil {
					h.logger.Error().Err(rmErr).Msg("Failed to remove orphaned upload")
				}
			}
			h.responder.WriteError(w, wrapDatabaseError("create article", "article", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, CreatedResponse{ID: article.ID, Message: "Article created successfully"})
	}
}

// updateArticle replaces all editable fields of an existing article
// @Summary Update article
// @Description Full replace of an article's fields; without a new file the submitted thumbnail value is kept verbatim
// @Tags Articles
// @Accept multipart/form-data
// @Produce json
// @Param articleID path int true "Article ID"
// @Success 200 {object} MessageResponse "Update confirmation"
// @Failure 404 {object} ErrorResponse "Not Found - Article not found"
// @Router /articles/{articleID} [put]
func (h articleHandler) updateArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := parseID(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.articleRepo.FindByID(articleID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find article", "article", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Article not found"))
			return
		}

		if err := parseMultipartForm(w, r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		title := r.FormValue("title")
		description := r.FormValue("description")
		if title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}

		thumbnail, uploaded, err := resolveImage(r, "thumbnail")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated := models.Article{
			ID:          existing.ID,
			Thumbnail:   thumbnail,
			Title:       title,
			Description: description,
			Content:     r.FormValue("content"),
			CreatedAt:   existing.CreatedAt,
		}

		if err := h.articleRepo.Update(&updated); err != nil {
			if uploaded {
				if rmErr := storage.Remove(*thumbnail); rmErr != nil {
					h.logger.Error().Err(rmErr).Msg("Failed to remove orphaned upload")
				}
			}
			h.responder.WriteError(w, wrapDatabaseError("update article", "article", err))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "Article updated successfully"})
	}
}

// deleteArticle removes an article by ID
// @Summary Delete article
// @Description Removes an article; deleting an unknown id is a 404, not a silent success
// @Tags Articles
// @Produce json
// @Param articleID path int true "Article ID"
// @Success 200 {object} MessageResponse "Delete confirmation"
// @Failure 404 {object} ErrorResponse "Not Found - Article not found"
// @Router /articles/{articleID} [delete]
func (h articleHandler) deleteArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := parseID(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.articleRepo.Delete(articleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("Article not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("delete article", "article", err))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "Article deleted successfully"})
	}
}
