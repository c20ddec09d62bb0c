// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide the few operations the sync needs.
// This abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Stager
//
// When storage is enabled, asset files are not pushed through the upload API of
// the content store. The Stager puts them into a bucket instead and returns a
// presigned URL the store fetches the file from while processing the asset.
// Staged objects are removed again once the asset pipeline ends, also on failure.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	stager := storage.NewStager(client, config, logger)
//	url, err := stager.Stage(ctx, "content/projects/x/photo.jpg", file, size, "image/jpeg")
package storage
