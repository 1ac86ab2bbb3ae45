package storage

// REST paths of the storage service. The transport prefixes the base URL.
const (
	PathCreateBucket = "/_api/rest/v1/storage/create-bucket"
	PathListBuckets  = "/_api/rest/v1/storage/list-buckets"
	PathStats        = "/_api/rest/v1/storage/stats"
	PathSearchFiles  = "/_api/rest/v1/storage/search-files"

	PathBucketGet       = "/_api/rest/v1/storage/bucket/get"
	PathBucketUpdate    = "/_api/rest/v1/storage/bucket/update"
	PathBucketListFiles = "/_api/rest/v1/storage/bucket/list-files"

	PathFileGet    = "/_api/rest/v1/storage/file/get"
	PathFileDelete = "/_api/rest/v1/storage/file/delete"
	PathFileUpdate = "/_api/rest/v1/storage/file/update"
)

// RootBucket is the identifier of the reserved, always-present bucket.
const RootBucket = "root"

// Paths lists every endpoint the SDK calls.
var Paths = []string{
	PathCreateBucket,
	PathListBuckets,
	PathStats,
	PathSearchFiles,
	PathBucketGet,
	PathBucketUpdate,
	PathBucketListFiles,
	PathFileGet,
	PathFileDelete,
	PathFileUpdate,
}
