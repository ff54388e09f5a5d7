package contracts

import "context"

// ArtifactStorage archives evaluation transcripts as JSON objects.
type ArtifactStorage interface {
	UploadJSON(ctx context.Context, objectName string, payload []byte) error
}
