package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"migration-validator/core/diff"
	"migration-validator/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// objectPrefix is the bucket prefix all published runs live under.
const objectPrefix = "reports/"

// Artifact names a rendered report file and how to produce it.
type Artifact struct {
	Name        string
	ContentType string
	Render      func(io.Writer, *diff.Report) error
}

// Artifacts lists every file published for one run.
var Artifacts = []Artifact{
	{Name: "summary.txt", ContentType: "text/plain; charset=utf-8", Render: WriteSummary},
	{Name: "issues.csv", ContentType: "text/csv", Render: WriteIssuesCSV},
	{Name: "mismatches.csv", ContentType: "text/csv", Render: WriteMismatchCSV},
	{Name: "report.html", ContentType: "text/html; charset=utf-8", Render: WriteHTML},
}

// Publisher uploads rendered report artifacts to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewPublisher creates a new report publisher.
func NewPublisher(client storage.Client, bucket string, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, logger: logger}
}

// Publish renders every artifact for the report and uploads them under
// reports/<run-id>/. It returns the object names written.
func (p *Publisher) Publish(ctx context.Context, r *diff.Report) ([]string, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
	}

	names := make([]string, 0, len(Artifacts))
	for _, a := range Artifacts {
		var buf bytes.Buffer
		if err := a.Render(&buf, r); err != nil {
			return names, fmt.Errorf("failed to render %s: %w", a.Name, err)
		}

		objectName := objectPrefix + r.RunID + "/" + a.Name
		_, err := p.client.PutObject(ctx, p.bucket, objectName, &buf, int64(buf.Len()),
			minio.PutObjectOptions{ContentType: a.ContentType})
		if err != nil {
			return names, fmt.Errorf("failed to upload %s: %w", objectName, err)
		}

		p.logger.Info("Published report artifact",
			zap.String("run_id", r.RunID),
			zap.String("object", objectName),
		)
		names = append(names, objectName)
	}

	return names, nil
}

// List returns the object names of published artifacts. A non-empty runID
// restricts the listing to that run.
func (p *Publisher) List(ctx context.Context, runID string) ([]string, error) {
	prefix := objectPrefix
	if runID != "" {
		prefix += runID + "/"
	}

	var names []string
	for obj := range p.client.ListObjects(ctx, p.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return names, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		names = append(names, obj.Key)
	}
	return names, nil
}

// Get fetches one published object. The caller must close the reader.
func (p *Publisher) Get(ctx context.Context, objectName string) (io.ReadCloser, error) {
	if !strings.HasPrefix(objectName, objectPrefix) {
		objectName = objectPrefix + objectName
	}
	return p.client.GetObject(ctx, p.bucket, objectName, minio.GetObjectOptions{})
}

// Remove deletes every artifact of the given run and returns how many
// objects were removed.
func (p *Publisher) Remove(ctx context.Context, runID string) (int, error) {
	names, err := p.List(ctx, runID)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, name := range names {
		if err := p.client.RemoveObject(ctx, p.bucket, name, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", name, err)
		}
		removed++
	}
	return removed, nil
}
