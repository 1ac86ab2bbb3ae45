package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storage-sdk/core/transport"
)

// ErrNoEnvelope is returned by Decode for a nil envelope.
var ErrNoEnvelope = errors.New("no envelope")

// Bucket is a named container of files owned by the service.
type Bucket struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsPublic  bool      `json:"isPublic"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// File is a stored object inside a bucket.
type File struct {
	ID         string    `json:"id"`
	BucketID   string    `json:"bucketId"`
	FileName   string    `json:"fileName"`
	IsPublic   bool      `json:"isPublic"`
	Size       int64     `json:"size"`
	Encoding   string    `json:"encoding"`
	MimeType   string    `json:"mimeType"`
	PublicPath string    `json:"publicPath"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Stats are aggregate counters over the whole storage namespace.
type Stats struct {
	FilesCount  int64   `json:"filesCount"`
	TotalSize   int64   `json:"totalSize"`
	AvgFileSize float64 `json:"avgFileSize"`
	MinFileSize int64   `json:"minFileSize"`
	MaxFileSize int64   `json:"maxFileSize"`
}

// Decode unmarshals the data of env into T. If the envelope carries errors
// they are returned instead; a null payload yields the zero value.
func Decode[T any](env *transport.Envelope) (T, error) {
	var out T
	if env == nil {
		return out, ErrNoEnvelope
	}
	if err := env.Err(); err != nil {
		return out, err
	}
	if !env.HasData() {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("failed to decode envelope data: %w", err)
	}
	return out, nil
}
