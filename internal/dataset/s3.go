package dataset

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3GetObjectAPI is the subset of the S3 client used by S3Source.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads the dataset from a single S3 object.
type S3Source struct {
	client S3GetObjectAPI
	bucket string
	key    string
}

// S3Options configures NewS3Source.
type S3Options struct {
	Bucket          string
	Key             string
	Region          string
	Endpoint        string // S3-compatible endpoint; enables path-style addressing
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Source creates an S3-backed source using the default AWS credential
// chain, or static credentials when both keys are set.
func NewS3Source(ctx context.Context, opts S3Options) (*S3Source, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 dataset source requires a bucket")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for S3 dataset: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3SourceWithClient(client, opts.Bucket, opts.Key), nil
}

// NewS3SourceWithClient creates an S3 source around an existing client.
func NewS3SourceWithClient(client S3GetObjectAPI, bucket, key string) *S3Source {
	return &S3Source{client: client, bucket: bucket, key: key}
}

// Name returns "s3".
func (s *S3Source) Name() string {
	return "s3"
}

// Lines downloads the object on every call. A missing object is a storage
// error, not an empty dataset.
func (s *S3Source) Lines(ctx context.Context) ([]string, error) {
	op := fmt.Sprintf("s3 get %s/%s", s.bucket, s.key)

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, unavailable(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, unavailable(op, err)
	}
	return SplitLines(body), nil
}
