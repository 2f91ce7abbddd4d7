package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aerohr/console/internal/listview"
	"github.com/aerohr/console/internal/render"
	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/derive"
	"github.com/aerohr/console/pkg/expression"
	"github.com/aerohr/console/pkg/models"
)

// screen is a list controller with its table layout, independent of the
// record type.
type screen interface {
	Load(ctx context.Context) listview.Result
	Refresh(ctx context.Context) listview.Result
	RefreshStatistics(ctx context.Context) listview.Result
	SetPage(ctx context.Context, n int) listview.Result
	UpdateStatus(ctx context.Context, id, status string) listview.Result
	Reactivate(ctx context.Context, id string) listview.Result
	Approve(ctx context.Context, id string) listview.Result
	Delete(ctx context.Context, id string, confirm listview.Confirmer) listview.Result
	Export(ctx context.Context, dir string) listview.Result
	Close()
	Render(w io.Writer)
	RenderJSON(w io.Writer) error
}

type typedScreen[T models.Record] struct {
	*listview.Controller[T]
	cols []render.Column[T]
}

func (s *typedScreen[T]) Render(w io.Writer) {
	render.List(w, s.View(), s.cols, s.Classify)
}

func (s *typedScreen[T]) RenderJSON(w io.Writer) error {
	return render.JSON(w, s.View())
}

// screenOptions are the list flags shared by list, export and watch.
type screenOptions struct {
	search  string
	filters map[string]string
	perPage int
	expr    string
}

func newScreen(sess *session, resource string, so screenOptions) (screen, error) {
	res := constants.Resource(resource)
	switch res {
	case constants.ResourceControlledDocuments:
		return buildScreen(sess, res, render.DocumentColumns(), models.FieldNextReviewDate, so)
	case constants.ResourceTrainingRecords:
		return buildScreen(sess, res, render.TrainingColumns(), models.FieldCertExpiryDate, so)
	case constants.ResourceEmployees:
		return buildScreen(sess, res, render.EmployeeColumns(), models.FieldProbationEndDate, so)
	case constants.ResourceAttendance:
		return buildScreen(sess, res, render.AttendanceColumns(), "", so)
	}
	names := make([]string, 0, len(constants.ListResources()))
	for _, r := range constants.ListResources() {
		names = append(names, string(r))
	}
	return nil, fmt.Errorf("unknown resource %q (valid: %s)", resource, strings.Join(names, ", "))
}

func buildScreen[T models.Record](sess *session, res constants.Resource, cols []render.Column[T], dateField string, so screenOptions) (screen, error) {
	perPage := sess.cfg.PerPage
	if so.perPage > 0 {
		perPage = so.perPage
	}
	opts := []listview.Option{
		listview.WithPerPage(perPage),
		listview.WithTimeout(sess.cfg.Timeout),
		listview.WithFilters(so.filters),
		listview.WithSearch(so.search),
	}
	if dateField != "" {
		opts = append(opts, listview.WithDateWindow(dateField, sess.cfg.HorizonDays))
	}
	if so.expr != "" {
		var sample T
		f, err := derive.NewExprFilter(expression.NewEngine(), so.expr, sample)
		if err != nil {
			return nil, err
		}
		opts = append(opts, listview.WithExprFilter(f))
	}
	ctrl := listview.New[T](listview.NewRemoteFetcher[T](sess.client), res, opts...)
	return &typedScreen[T]{Controller: ctrl, cols: cols}, nil
}
