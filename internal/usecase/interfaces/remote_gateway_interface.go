package interfaces

import (
	"context"
	"io"

	"corpculture/internal/domain/entities"
)

//go:generate mockgen -source=remote_gateway_interface.go -destination=mocks/remote_gateway_mock.go

// IRemoteGateway abstracts the upstream corpculture REST API, the single
// external collaborator of this service. Responses use the upstream envelope
// {success, message?, <resourceKey>}; failures surface as *entities.RemoteError
// carrying the server-supplied message.
type IRemoteGateway interface {
	Fetch(ctx context.Context, resource, id string) (map[string]any, error)
	List(ctx context.Context, resource string, params map[string]string) ([]map[string]any, error)
	Create(ctx context.Context, resource string, payload map[string]any) (map[string]any, error)
	Update(ctx context.Context, resource, id string, payload map[string]any) (map[string]any, error)
	Delete(ctx context.Context, resource, id string) error
	Count(ctx context.Context, resource string) (int64, error)
	NextCounter(ctx context.Context, resource string) (entities.SequenceCounter, error)
	UploadFile(ctx context.Context, resource, field, filename string, contents io.Reader) (map[string]any, error)
}
