package report

import (
	"context"
	"testing"

	"migration-validator/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublish(t *testing.T) {
	t.Run("Uploads Every Artifact", func(t *testing.T) {
		r := sampleReport(t)
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "reports").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "reports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		p := NewPublisher(mockClient, "reports", zap.NewNop())
		names, err := p.Publish(context.Background(), r)
		require.NoError(t, err)

		require.Len(t, names, len(Artifacts))
		assert.Equal(t, "reports/"+r.RunID+"/summary.txt", names[0])
		mockClient.AssertNumberOfCalls(t, "PutObject", len(Artifacts))
	})

	t.Run("Creates Missing Bucket", func(t *testing.T) {
		r := sampleReport(t)
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "reports").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "reports", mock.Anything).Return(nil)
		mockClient.On("PutObject", mock.Anything, "reports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		p := NewPublisher(mockClient, "reports", zap.NewNop())
		_, err := p.Publish(context.Background(), r)
		require.NoError(t, err)

		mockClient.AssertCalled(t, "MakeBucket", mock.Anything, "reports", mock.Anything)
	})

	t.Run("Upload Error Propagates", func(t *testing.T) {
		r := sampleReport(t)
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "reports").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "reports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, assert.AnError)

		p := NewPublisher(mockClient, "reports", zap.NewNop())
		names, err := p.Publish(context.Background(), r)

		require.Error(t, err)
		assert.Empty(t, names)
	})
}

func TestListAndRemove(t *testing.T) {
	makeListing := func(keys ...string) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, len(keys))
		for _, k := range keys {
			ch <- minio.ObjectInfo{Key: k}
		}
		close(ch)
		return ch
	}

	t.Run("List Restricted To Run", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("ListObjects", mock.Anything, "reports", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "reports/run-1/"
		})).Return(makeListing("reports/run-1/summary.txt", "reports/run-1/report.html"))

		p := NewPublisher(mockClient, "reports", zap.NewNop())
		names, err := p.List(context.Background(), "run-1")
		require.NoError(t, err)
		assert.Len(t, names, 2)
	})

	t.Run("Remove Deletes Every Object", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("ListObjects", mock.Anything, "reports", mock.Anything).
			Return(makeListing("reports/run-1/summary.txt", "reports/run-1/report.html"))
		mockClient.On("RemoveObject", mock.Anything, "reports", mock.Anything, mock.Anything).Return(nil)

		p := NewPublisher(mockClient, "reports", zap.NewNop())
		removed, err := p.Remove(context.Background(), "run-1")
		require.NoError(t, err)

		assert.Equal(t, 2, removed)
		mockClient.AssertNumberOfCalls(t, "RemoveObject", 2)
	})
}
