// Package storage wraps the MinIO client used as an SDK archive cache.
//
// SDK archives are large and their upstream hosts are slow or flaky. When the
// cache is enabled, core/sdk looks for an archive in the bucket before going
// upstream and uploads freshly downloaded archives so the next machine gets
// them from the bucket. Both AWS S3 and self-hosted MinIO work.
//
// The Client interface exposes only what the cache uses, which keeps the
// testify mock in core/storage/mocks small.
package storage
