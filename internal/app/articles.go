package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jsamuelsen11/go-admin-workflow/internal/app/fanout"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/domain/article"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Article batch action names and message keys.
const (
	BatchPublish = "publish"

	MsgBatchPublishSuccess     = "flash_batch_publish_success"
	MsgBatchPublishError       = "flash_batch_publish_error"
	MsgBatchPublishAllRejected = "flash_batch_publish_all_rejected"
)

// publishWorkers bounds the concurrent updates of one publish batch.
const publishWorkers = 4

// PublishBatchAction returns the BatchActionSpec and handler of the article publish
// batch action. It runs without confirmation and refuses all_elements.
// Every unpublished article of the selection is attempted; a single failure
// turns the feedback into an error naming the first failed article.
func PublishBatchAction(manager ports.ModelManager[*article.Article], logger *slog.Logger) (domain.BatchActionSpec, BatchHandler) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	noConfirm := false
	spec := domain.BatchActionSpec{
		Name:              BatchPublish,
		Label:             "action_publish",
		TranslationDomain: "article",
		AskConfirmation:   &noConfirm,
		Relevance: func(ids []string, all bool, _ domain.BatchRequest) domain.Relevance {
			if all {
				return domain.NotRelevantBecause(MsgBatchPublishAllRejected)
			}
			if len(ids) == 0 {
				return domain.NotRelevant()
			}
			return domain.Relevant()
		},
	}

	handler := func(ctx context.Context, scope BatchScope) (domain.Result, error) {
		if scope.Query == nil {
			scope.Flash(domain.FlashInfo, MsgBatchNoElementsProcessed, nil)
			return domain.Redirect(scope.ListURL), nil
		}

		articles, _, err := manager.Query(ctx, *scope.Query)
		if err != nil {
			return domain.Result{}, fmt.Errorf("loading articles to publish: %w", err)
		}

		var pending []*article.Article
		for _, a := range articles {
			if a.Status != article.StatusPublished {
				pending = append(pending, a)
			}
		}

		results := fanout.Run(ctx, publishWorkers, pending, func(ctx context.Context, a *article.Article) (domain.SaveResult[*article.Article], error) {
			a.Status = article.StatusPublished
			res := manager.Update(ctx, a)
			if !res.OK() {
				return res, fmt.Errorf("publishing article %d: %s", a.ID, res.Status)
			}
			return res, nil
		})

		for i, r := range results {
			if r.Err == nil {
				continue
			}
			logger.ErrorContext(ctx, "failed to publish article",
				slog.String("operation", "BatchPublish"),
				slog.Int64("id", pending[i].ID),
				slog.Any("error", errors.Join(r.Err, r.Value.Err)),
			)
		}

		tally := fanout.Summarize(results)
		if tally.Failed > 0 {
			scope.Flash(domain.FlashError, MsgBatchPublishError, map[string]string{
				"%name%":  pending[tally.FirstFailure].String(),
				"%count%": strconv.Itoa(tally.Succeeded),
			})
			return domain.Redirect(scope.ListURL), nil
		}

		scope.Flash(domain.FlashSuccess, MsgBatchPublishSuccess, map[string]string{"%count%": strconv.Itoa(tally.Succeeded)})
		return domain.Redirect(scope.ListURL), nil
	}

	return spec, handler
}
