package storage

import (
	"context"
	"fmt"

	"storage-sdk/core/transport"
)

// Storage is the entry point of the SDK. It validates arguments locally and
// forwards each call to the transport, returning the envelope untouched.
// It holds no mutable state and is safe for concurrent use.
type Storage struct {
	transport transport.Transport
}

// New creates a storage facade over t.
func New(t transport.Transport) *Storage {
	return &Storage{transport: t}
}

type createBucketRequest struct {
	Name     string `json:"name"`
	IsPublic bool   `json:"isPublic"`
}

type searchRequest struct {
	Expression string       `json:"expression"`
	Options    *ListOptions `json:"options"`
}

// Bucket returns a handle bound to a bucket name or id. No request is made.
func (s *Storage) Bucket(nameOrID string) (*BucketHandle, error) {
	if nameOrID == "" {
		return nil, fmt.Errorf("%w: bucket name or id is required", ErrInvalidArgument)
	}
	return newBucketHandle(nameOrID, s.transport), nil
}

// Root returns a handle bound to the reserved root bucket.
func (s *Storage) Root() *BucketHandle {
	return newBucketHandle(RootBucket, s.transport)
}

// CreateBucket creates a bucket. Duplicate and reserved names are rejected by
// the service and reported in the envelope.
func (s *Storage) CreateBucket(ctx context.Context, name string, isPublic bool) (*transport.Envelope, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: bucket name is required", ErrInvalidArgument)
	}
	return s.transport.Post(ctx, PathCreateBucket, createBucketRequest{Name: name, IsPublic: isPublic}), nil
}

// CreateBucketDefault creates a public bucket.
func (s *Storage) CreateBucketDefault(ctx context.Context, name string) (*transport.Envelope, error) {
	return s.CreateBucket(ctx, name, true)
}

// ListBuckets lists buckets. It accepts an optional Expression and optional
// ListOptions, in either order; both may be omitted.
func (s *Storage) ListBuckets(ctx context.Context, args ...ListArg) (*transport.Envelope, error) {
	q, err := parseListArgs(args)
	if err != nil {
		return nil, err
	}
	return s.transport.Post(ctx, PathListBuckets, q), nil
}

// GetStats returns file count and size aggregates for the whole namespace.
func (s *Storage) GetStats(ctx context.Context) (*transport.Envelope, error) {
	return s.transport.Post(ctx, PathStats, nil), nil
}

// SearchFiles searches files across all buckets. opts may be nil.
func (s *Storage) SearchFiles(ctx context.Context, expression string, opts *ListOptions) (*transport.Envelope, error) {
	if expression == "" {
		return nil, fmt.Errorf("%w: search expression is required", ErrInvalidArgument)
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	return s.transport.Post(ctx, PathSearchFiles, searchRequest{Expression: expression, Options: opts}), nil
}
