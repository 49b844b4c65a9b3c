package articleapi

import (
	"time"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain/article"
)

// ArticleDTO is the article API's article representation.
type ArticleDTO struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Status    string `json:"status"`
	Author    string `json:"author"`
	Version   int    `json:"version"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// ArticleListDTO is one page of a listing.
type ArticleListDTO struct {
	Articles []ArticleDTO `json:"articles"`
	Total    int          `json:"total"`
}

// BatchDeleteRequestDTO selects the articles removed by a batch delete:
// every article matching Filters, restricted to IDs when present.
type BatchDeleteRequestDTO struct {
	Filters map[string]string `json:"filters,omitempty"`
	IDs     []string          `json:"ids,omitempty"`
}

// BatchDeleteResponseDTO reports how many articles were removed.
type BatchDeleteResponseDTO struct {
	Deleted int `json:"deleted"`
}

// toArticle converts the wire form. Unparseable timestamps become zero.
func toArticle(dto *ArticleDTO) *article.Article {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, dto.UpdatedAt)
	return &article.Article{
		ID:        dto.ID,
		Kind:      dto.Kind,
		Title:     dto.Title,
		Body:      dto.Body,
		Status:    article.Status(dto.Status),
		Author:    dto.Author,
		Version:   dto.Version,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// toDTO converts an article for create and update calls. Timestamps are
// owned by the API and never sent.
func toDTO(a *article.Article) ArticleDTO {
	return ArticleDTO{
		ID:      a.ID,
		Kind:    a.Kind,
		Title:   a.Title,
		Body:    a.Body,
		Status:  a.Status.String(),
		Author:  a.Author,
		Version: a.Version,
	}
}
