package listview

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/models"

	apperrors "github.com/aerohr/console/pkg/errors"
)

// UpdateStatus moves a record to status. Known workflow statuses are checked
// against the lifecycle first. On success the whole list is refetched so
// server-side derived values are picked up; on failure nothing changes.
func (c *Controller[T]) UpdateStatus(ctx context.Context, id, status string) Result {
	return c.changeStatus(ctx, id, status, false)
}

// Reactivate is the explicit transition from archived or expired back to
// active.
func (c *Controller[T]) Reactivate(ctx context.Context, id string) Result {
	return c.changeStatus(ctx, id, string(constants.StatusActive), true)
}

func (c *Controller[T]) changeStatus(ctx context.Context, id, status string, reactivate bool) Result {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return superseded(ActionUpdateStatus)
	}
	if rec, found := c.findRecord(id); found {
		if sr, isStatus := any(rec).(models.StatusRecord); isStatus {
			from := sr.WorkflowStatus()
			if models.IsWorkflowStatus(from) && models.IsWorkflowStatus(status) {
				if err := models.CheckTransition(constants.Status(from), constants.Status(status), reactivate); err != nil {
					c.mu.Unlock()
					return failed(ActionUpdateStatus, apperrors.NewMutationFailure(
						apperrors.OpUpdateStatus, string(c.resource), http.StatusConflict, err.Error(), nil))
				}
			}
		}
	}
	reqCtx, _, release := c.track(ctx)
	c.mu.Unlock()

	err := c.fetcher.UpdateStatus(reqCtx, c.resource, id, status)
	release()
	if err != nil {
		log.Printf("⚠️ update status %s/%s: %v", c.resource, id, err)
		return failed(ActionUpdateStatus, err)
	}

	res := ok(ActionUpdateStatus, fmt.Sprintf("Status updated to %s", status))
	if r := c.Refresh(ctx); r.Err != nil {
		res.Followup = r.Err
	}
	return res
}

// Approve approves a pending record and refetches the list.
func (c *Controller[T]) Approve(ctx context.Context, id string) Result {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return superseded(ActionApprove)
	}
	if rec, found := c.findRecord(id); found {
		if sr, isStatus := any(rec).(models.StatusRecord); isStatus &&
			sr.WorkflowStatus() != string(constants.StatusPendingApproval) {
			c.mu.Unlock()
			return failed(ActionApprove, apperrors.NewMutationFailure(
				apperrors.OpApprove, string(c.resource), http.StatusConflict,
				fmt.Sprintf("only %s records can be approved", constants.StatusPendingApproval), nil))
		}
	}
	reqCtx, _, release := c.track(ctx)
	c.mu.Unlock()

	err := c.fetcher.Approve(reqCtx, c.resource, id)
	release()
	if err != nil {
		log.Printf("⚠️ approve %s/%s: %v", c.resource, id, err)
		return failed(ActionApprove, err)
	}

	res := ok(ActionApprove, "Approved")
	if r := c.Refresh(ctx); r.Err != nil {
		res.Followup = r.Err
	}
	return res
}

// Delete removes a record after explicit confirmation. The local removal and
// the total decrement happen only after the server confirmed the delete, so a
// failed delete leaves the view exactly as it was. The id is remembered so a
// stale page cannot bring it back. When the record was not on the loaded page,
// or a list request was still in flight, the list is refetched instead of
// guessing the total. Statistics are refreshed afterwards.
func (c *Controller[T]) Delete(ctx context.Context, id string, confirm Confirmer) Result {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return superseded(ActionDelete)
	}
	prompt := fmt.Sprintf("Delete %s %s?", c.resource, id)
	if rec, found := c.findRecord(id); found {
		if label := displayLabel(rec); label != "" {
			prompt = fmt.Sprintf("Delete %q from %s?", label, c.resource)
		}
	}
	c.mu.Unlock()

	if confirm == nil || !confirm.Confirm(ctx, prompt) {
		return Result{Action: ActionDelete, Declined: true}
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return superseded(ActionDelete)
	}
	reqCtx, _, release := c.track(ctx)
	c.mu.Unlock()

	err := c.fetcher.Delete(reqCtx, c.resource, id)
	release()
	if err != nil {
		log.Printf("⚠️ delete %s/%s: %v", c.resource, id, err)
		return failed(ActionDelete, err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return superseded(ActionDelete)
	}
	c.tombstones[id] = struct{}{}
	page, onPage := c.page.Without(id)
	if onPage && page.Total > 0 {
		page.Total--
	}
	c.version++
	page.Version = c.version
	c.page = page
	// A list request dispatched before the delete would apply a pre-delete total.
	inflight := c.listCancel != nil
	if inflight {
		c.listSeq++
		c.listCancel()
		c.listCancel = nil
	}
	c.mu.Unlock()

	res := ok(ActionDelete, "Deleted")
	if !onPage || inflight {
		if r := c.Refresh(ctx); r.Err != nil {
			res.Followup = r.Err
		}
	}
	if r := c.RefreshStatistics(ctx); r.Err != nil && res.Followup == nil {
		res.Followup = r.Err
	}
	return res
}

// displayLabel picks a human readable name for confirmation prompts.
func displayLabel(r models.Record) string {
	fields := r.SearchFields()
	for _, k := range []string{models.FieldTitle, models.FieldName, models.FieldEmployeeName, models.FieldCourseTitle} {
		if v, ok := fields[k]; ok && v != nil && *v != "" {
			return *v
		}
	}
	return ""
}
