package storage_test

import (
	"context"
	"testing"

	"storage-sdk/core/transport"
	"storage-sdk/feature/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBucketHandle_Operations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		path string
		body string
		call func(b *storage.BucketHandle) (*transport.Envelope, error)
	}{
		{
			"Details", storage.PathBucketGet, `{"bucket":"logs"}`,
			func(b *storage.BucketHandle) (*transport.Envelope, error) { return b.Details(ctx), nil },
		},
		{
			"MakePublic", storage.PathBucketUpdate, `{"bucket":"logs","isPublic":true}`,
			func(b *storage.BucketHandle) (*transport.Envelope, error) { return b.MakePublic(ctx), nil },
		},
		{
			"MakePrivate", storage.PathBucketUpdate, `{"bucket":"logs","isPublic":false}`,
			func(b *storage.BucketHandle) (*transport.Envelope, error) { return b.MakePrivate(ctx), nil },
		},
		{
			"ListFiles", storage.PathBucketListFiles, `{"bucket":"logs","expression":"size>0","options":{"limit":3}}`,
			func(b *storage.BucketHandle) (*transport.Envelope, error) {
				return b.ListFiles(ctx, storage.Expression("size>0"), storage.ListOptions{Limit: 3})
			},
		},
		{
			"ListFilesNoArguments", storage.PathBucketListFiles, `{"bucket":"logs","expression":null,"options":null}`,
			func(b *storage.BucketHandle) (*transport.Envelope, error) { return b.ListFiles(ctx) },
		},
		{
			"File", storage.PathFileGet, `{"bucket":"logs","fileName":"app.log"}`,
			func(b *storage.BucketHandle) (*transport.Envelope, error) { return b.File(ctx, "app.log") },
		},
		{
			"DeleteFile", storage.PathFileDelete, `{"bucket":"logs","fileName":"app.log"}`,
			func(b *storage.BucketHandle) (*transport.Envelope, error) { return b.DeleteFile(ctx, "app.log") },
		},
		{
			"MakeFilePublic", storage.PathFileUpdate, `{"bucket":"logs","fileName":"app.log","isPublic":true}`,
			func(b *storage.BucketHandle) (*transport.Envelope, error) { return b.MakeFilePublic(ctx, "app.log") },
		},
		{
			"MakeFilePrivate", storage.PathFileUpdate, `{"bucket":"logs","fileName":"app.log","isPublic":false}`,
			func(b *storage.BucketHandle) (*transport.Envelope, error) { return b.MakeFilePrivate(ctx, "app.log") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, mockTransport := setupStorage()
			handle, err := st.Bucket("logs")
			require.NoError(t, err)

			want := okEnvelope(t)
			mockTransport.On("Post", ctx, tt.path, jsonBody(tt.body)).Return(want).Once()

			env, err := tt.call(handle)
			require.NoError(t, err)
			assert.Same(t, want, env)
			mockTransport.AssertExpectations(t)
		})
	}
}

func TestBucketHandle_RequiresFileName(t *testing.T) {
	ctx := context.Background()
	st, mockTransport := setupStorage()
	root := st.Root()

	calls := map[string]func() (*transport.Envelope, error){
		"File":            func() (*transport.Envelope, error) { return root.File(ctx, "") },
		"DeleteFile":      func() (*transport.Envelope, error) { return root.DeleteFile(ctx, "") },
		"MakeFilePublic":  func() (*transport.Envelope, error) { return root.MakeFilePublic(ctx, "") },
		"MakeFilePrivate": func() (*transport.Envelope, error) { return root.MakeFilePrivate(ctx, "") },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			env, err := call()
			assert.ErrorIs(t, err, storage.ErrInvalidArgument)
			assert.Nil(t, env)
		})
	}

	t.Run("ListFilesInvalidValue", func(t *testing.T) {
		env, err := root.ListFiles(ctx, nil)
		assert.ErrorIs(t, err, storage.ErrInvalidValue)
		assert.Nil(t, env)
	})

	mockTransport.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything)
}

func TestBucketHandle_RootBody(t *testing.T) {
	ctx := context.Background()
	st, mockTransport := setupStorage()

	want := okEnvelope(t)
	mockTransport.On("Post", ctx, storage.PathBucketGet, jsonBody(`{"bucket":"root"}`)).Return(want).Once()

	assert.Same(t, want, st.Root().Details(ctx))
	mockTransport.AssertExpectations(t)
}
