package listview

import (
	"context"

	"github.com/aerohr/console/pkg/client"
	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/models"
)

// Fetcher is the remote API as seen by one list controller.
type Fetcher[T models.Record] interface {
	List(ctx context.Context, resource constants.Resource, fs models.FilterState) (models.PageResult[T], error)
	Statistics(ctx context.Context, resource constants.Resource) (models.Statistics, error)
	UpdateStatus(ctx context.Context, resource constants.Resource, id, status string) error
	Approve(ctx context.Context, resource constants.Resource, id string) error
	Delete(ctx context.Context, resource constants.Resource, id string) error
	Export(ctx context.Context, resource constants.Resource, fs models.FilterState) ([]byte, string, error)
}

// RemoteFetcher adapts an HRClient to Fetcher for record type T.
type RemoteFetcher[T models.Record] struct {
	Client *client.HRClient
}

// NewRemoteFetcher wraps c.
func NewRemoteFetcher[T models.Record](c *client.HRClient) *RemoteFetcher[T] {
	return &RemoteFetcher[T]{Client: c}
}

func (f *RemoteFetcher[T]) List(ctx context.Context, resource constants.Resource, fs models.FilterState) (models.PageResult[T], error) {
	return client.ListOf[T](ctx, f.Client, resource, fs)
}

func (f *RemoteFetcher[T]) Statistics(ctx context.Context, resource constants.Resource) (models.Statistics, error) {
	return f.Client.Statistics(ctx, resource)
}

func (f *RemoteFetcher[T]) UpdateStatus(ctx context.Context, resource constants.Resource, id, status string) error {
	return f.Client.UpdateStatus(ctx, resource, id, status)
}

func (f *RemoteFetcher[T]) Approve(ctx context.Context, resource constants.Resource, id string) error {
	return f.Client.Approve(ctx, resource, id)
}

func (f *RemoteFetcher[T]) Delete(ctx context.Context, resource constants.Resource, id string) error {
	return f.Client.Delete(ctx, resource, id)
}

func (f *RemoteFetcher[T]) Export(ctx context.Context, resource constants.Resource, fs models.FilterState) ([]byte, string, error) {
	return f.Client.Export(ctx, resource, fs)
}
