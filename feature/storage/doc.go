// Package storage is the client facade of the cloud-storage REST service.
//
// Storage creates and lists buckets, reads aggregate statistics and searches
// files across buckets. BucketHandle scopes file and privacy operations to one
// bucket. Neither caches anything: each call validates its arguments, sends
// exactly one request through the injected transport.Transport and returns the
// transport's envelope as is.
//
// # Errors
//
// There are two disjoint error classes:
//
//   - Local errors (ErrInvalidArgument, ErrInvalidValue) are returned as the
//     Go error before any request is made. Match them with errors.Is.
//   - Remote errors (duplicate name, not found, permission denied, network
//     failures) arrive in Envelope.Errors and are never returned as Go errors.
//
// # Optional Arguments
//
// List operations take variadic ListArg values: an Expression, a ListOptions
// (or *ListOptions), both, or neither.
//
//	st := storage.New(client)
//	env, err := st.ListBuckets(ctx, storage.Expression("isPublic=true"), storage.ListOptions{Limit: 10})
//	buckets, err := storage.Decode[[]storage.Bucket](env)
package storage
