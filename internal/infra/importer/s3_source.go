package importer

import (
	"bytes"
	"context"
	"io"
	"path"

	"candidate-assistance/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Downloader is the part of manager.Downloader the source needs.
type Downloader interface {
	Download(ctx context.Context, w io.WriterAt, input *s3.GetObjectInput, options ...func(*manager.Downloader)) (int64, error)
}

// S3Source reads inventory files from s3://<bucket>/<prefix>/<key>.
type S3Source struct {
	bucket     string
	prefix     string
	downloader Downloader
}

// NewS3Source picks up region and credentials from the environment
// (AWS_REGION, AWS_PROFILE, AWS_ACCESS_KEY_ID ...).
func NewS3Source(ctx context.Context, bucket, prefix, endpoint string) (*S3Source, error) {
	if bucket == "" {
		return nil, errs.New("bucket required")
	}
	cfg, err := awsConfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load aws config")
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3SourceWithDownloader(bucket, prefix, manager.NewDownloader(client)), nil
}

func NewS3SourceWithDownloader(bucket, prefix string, d Downloader) *S3Source {
	return &S3Source{bucket: bucket, prefix: prefix, downloader: d}
}

// Open downloads the whole object into memory. Inventory exports are small CSV files.
func (s *S3Source) Open(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	if objectKey == "" {
		return nil, errs.New("object key required")
	}
	key := path.Join(s.prefix, objectKey)

	buf := manager.NewWriteAtBuffer(nil)
	n, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errs.Wrapf(err, "download s3://%s/%s", s.bucket, key)
	}
	return io.NopCloser(bytes.NewReader(buf.Bytes()[:n])), nil
}
