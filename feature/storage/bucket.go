package storage

import (
	"context"
	"fmt"

	"storage-sdk/core/transport"
)

// BucketHandle scopes operations to one bucket. It is a plain value bound to
// an identifier; creating one performs no request.
type BucketHandle struct {
	id        string
	transport transport.Transport
}

func newBucketHandle(id string, t transport.Transport) *BucketHandle {
	return &BucketHandle{id: id, transport: t}
}

type bucketRequest struct {
	Bucket string `json:"bucket"`
}

type bucketUpdateRequest struct {
	Bucket   string `json:"bucket"`
	IsPublic bool   `json:"isPublic"`
}

type bucketListRequest struct {
	Bucket     string       `json:"bucket"`
	Expression *string      `json:"expression"`
	Options    *ListOptions `json:"options"`
}

type fileRequest struct {
	Bucket   string `json:"bucket"`
	FileName string `json:"fileName"`
}

type fileUpdateRequest struct {
	Bucket   string `json:"bucket"`
	FileName string `json:"fileName"`
	IsPublic bool   `json:"isPublic"`
}

// ID returns the bucket name or id the handle is bound to.
func (b *BucketHandle) ID() string {
	return b.id
}

// Details fetches the bucket record.
func (b *BucketHandle) Details(ctx context.Context) *transport.Envelope {
	return b.transport.Post(ctx, PathBucketGet, bucketRequest{Bucket: b.id})
}

// MakePublic makes new files in the bucket public by default.
func (b *BucketHandle) MakePublic(ctx context.Context) *transport.Envelope {
	return b.setPublic(ctx, true)
}

// MakePrivate makes new files in the bucket private by default.
func (b *BucketHandle) MakePrivate(ctx context.Context) *transport.Envelope {
	return b.setPublic(ctx, false)
}

func (b *BucketHandle) setPublic(ctx context.Context, public bool) *transport.Envelope {
	return b.transport.Post(ctx, PathBucketUpdate, bucketUpdateRequest{Bucket: b.id, IsPublic: public})
}

// ListFiles lists the files of the bucket. Arguments follow Storage.ListBuckets.
func (b *BucketHandle) ListFiles(ctx context.Context, args ...ListArg) (*transport.Envelope, error) {
	q, err := parseListArgs(args)
	if err != nil {
		return nil, err
	}
	return b.transport.Post(ctx, PathBucketListFiles, bucketListRequest{
		Bucket:     b.id,
		Expression: q.Expression,
		Options:    q.Options,
	}), nil
}

// File fetches a file record by name.
func (b *BucketHandle) File(ctx context.Context, fileName string) (*transport.Envelope, error) {
	if err := requireFileName(fileName); err != nil {
		return nil, err
	}
	return b.transport.Post(ctx, PathFileGet, fileRequest{Bucket: b.id, FileName: fileName}), nil
}

// DeleteFile removes a file from the bucket.
func (b *BucketHandle) DeleteFile(ctx context.Context, fileName string) (*transport.Envelope, error) {
	if err := requireFileName(fileName); err != nil {
		return nil, err
	}
	return b.transport.Post(ctx, PathFileDelete, fileRequest{Bucket: b.id, FileName: fileName}), nil
}

// MakeFilePublic exposes a file through its public path.
func (b *BucketHandle) MakeFilePublic(ctx context.Context, fileName string) (*transport.Envelope, error) {
	return b.setFilePublic(ctx, fileName, true)
}

// MakeFilePrivate hides a file from its public path.
func (b *BucketHandle) MakeFilePrivate(ctx context.Context, fileName string) (*transport.Envelope, error) {
	return b.setFilePublic(ctx, fileName, false)
}

func (b *BucketHandle) setFilePublic(ctx context.Context, fileName string, public bool) (*transport.Envelope, error) {
	if err := requireFileName(fileName); err != nil {
		return nil, err
	}
	return b.transport.Post(ctx, PathFileUpdate, fileUpdateRequest{Bucket: b.id, FileName: fileName, IsPublic: public}), nil
}

func requireFileName(fileName string) error {
	if fileName == "" {
		return fmt.Errorf("%w: file name is required", ErrInvalidArgument)
	}
	return nil
}
