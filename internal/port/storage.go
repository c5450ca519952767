package port

import "context"

// ObjectInfo describes one object returned by a bucket listing.
type ObjectInfo struct {
	Key  string
	Size int64
}

// ObjectStorage abstracts cloud object storage operations.
type ObjectStorage interface {
	// ListObjects returns every object under prefix in listing order,
	// draining pagination before returning.
	ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)
	// DownloadToFile streams the object's bytes to localPath, creating
	// parent directories as needed.
	DownloadToFile(ctx context.Context, bucket, key, localPath string) error
}
