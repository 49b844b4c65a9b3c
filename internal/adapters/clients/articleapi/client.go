package articleapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain/article"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Compile-time check that Client implements ports.ModelManager.
var _ ports.ModelManager[*article.Article] = (*Client)(nil)

const articlesPath = "/api/v1/articles"

// ServiceName identifies the article API in traces, metrics and health
// checks.
const ServiceName = "article-api"

// Client manages articles through the article API. Every call goes through
// httpclient.Client, so it inherits circuit breaking, retries, rate
// limiting and tracing. Revisions are recorded by the API itself.
type Client struct {
	req    *Requester
	logger *slog.Logger
}

// NewClient creates a Client over an httpclient.Client whose base URL
// points at the API root.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{req: NewRequester(client, logger), logger: logger}
}

func articlePath(id int64) string {
	return articlesPath + "/" + strconv.FormatInt(id, 10)
}

// NewInstance returns a blank draft of the given sub-class.
func (c *Client) NewInstance(subclass string) *article.Article {
	return article.New(subclass)
}

// Find loads an article with GET /api/v1/articles/{id}.
func (c *Client) Find(ctx context.Context, id string) (*article.Article, error) {
	n, err := article.ParseID(id)
	if err != nil {
		return nil, err
	}

	var dto ArticleDTO
	if err := c.req.Do(ctx, http.MethodGet, articlePath(n), http.StatusOK, nil, &dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ObjectNotFound(id)
		}
		return nil, &domain.PersistenceError{Op: "Find", Err: err}
	}
	return toArticle(&dto), nil
}

// Create posts a new article. Field errors reported by the API become a
// validation conflict.
func (c *Client) Create(ctx context.Context, a *article.Article) domain.SaveResult[*article.Article] {
	var dto ArticleDTO
	err := c.req.Do(ctx, http.MethodPost, articlesPath, http.StatusCreated, toDTO(a), &dto)
	if err != nil {
		return c.saveFailure("Create", err)
	}
	*a = *toArticle(&dto)
	return domain.Saved(a)
}

// Update puts the article with its version. A 409 or 412 reply means the
// version is stale.
func (c *Client) Update(ctx context.Context, a *article.Article) domain.SaveResult[*article.Article] {
	var dto ArticleDTO
	err := c.req.Do(ctx, http.MethodPut, articlePath(a.ID), http.StatusOK, toDTO(a), &dto)
	if err != nil {
		return c.saveFailure("Update", err)
	}
	*a = *toArticle(&dto)
	return domain.Saved(a)
}

func (c *Client) saveFailure(op string, err error) domain.SaveResult[*article.Article] {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return domain.ValidationConflict[*article.Article](verr.Fields)
	case errors.Is(err, domain.ErrConflict):
		return domain.LockConflict[*article.Article](err)
	default:
		c.logger.Warn("article api write failed", slog.String("operation", op), slog.Any("error", err))
		return domain.PersistenceFailure[*article.Article](&domain.PersistenceError{Op: op, Err: err})
	}
}

// Delete removes an article with DELETE /api/v1/articles/{id}.
func (c *Client) Delete(ctx context.Context, a *article.Article) error {
	if err := c.req.Do(ctx, http.MethodDelete, articlePath(a.ID), http.StatusNoContent, nil, nil); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ObjectNotFound(a.ObjectID())
		}
		return &domain.PersistenceError{Op: "Delete", Err: err}
	}
	return nil
}

// BatchDelete removes the articles selected by q in one call.
func (c *Client) BatchDelete(ctx context.Context, q domain.Query) (int, error) {
	if q.Constrained() && len(q.IDs) == 0 {
		return 0, nil
	}

	var resp BatchDeleteResponseDTO
	body := BatchDeleteRequestDTO{Filters: q.Filters, IDs: q.IDs}
	if err := c.req.Do(ctx, http.MethodPost, articlesPath+"/batch-delete", http.StatusOK, body, &resp); err != nil {
		return 0, &domain.PersistenceError{Op: "BatchDelete", Err: err}
	}
	return resp.Deleted, nil
}

// Query lists one page of articles matching q.
func (c *Client) Query(ctx context.Context, q domain.Query) ([]*article.Article, int, error) {
	if q.Constrained() && len(q.IDs) == 0 {
		return nil, 0, nil
	}

	var dto ArticleListDTO
	if err := c.req.Do(ctx, http.MethodGet, articlesPath+queryString(q), http.StatusOK, nil, &dto); err != nil {
		return nil, 0, &domain.PersistenceError{Op: "Query", Err: err}
	}

	out := make([]*article.Article, 0, len(dto.Articles))
	for i := range dto.Articles {
		out = append(out, toArticle(&dto.Articles[i]))
	}
	return out, dto.Total, nil
}

// ObjectID returns the URL identifier of a.
func (c *Client) ObjectID(a *article.Article) string {
	return a.ObjectID()
}

// ToString returns the display name of a.
func (c *Client) ToString(a *article.Article) string {
	return a.String()
}

// queryString encodes q as filter[name], sort_by, sort_order, page,
// per_page and repeated id parameters, including the leading "?".
func queryString(q domain.Query) string {
	v := url.Values{}
	for name, value := range q.Filters {
		if value != "" {
			v.Set(fmt.Sprintf("filter[%s]", name), value)
		}
	}
	if q.SortBy != "" {
		v.Set("sort_by", q.SortBy)
		if q.SortOrder != "" {
			v.Set("sort_order", q.SortOrder)
		}
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
		v.Set("page", strconv.Itoa(max(q.Page, 1)))
	}
	for _, id := range q.IDs {
		v.Add("id", id)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
