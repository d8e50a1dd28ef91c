package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Prefix is the path prefix S3Loader understands: s3://bucket/key.
const S3Prefix = "s3://"

// S3Client defines the subset of S3 operations used by S3Loader.
type S3Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Loader reads resources addressed as s3://bucket/key.
// It is safe for concurrent use.
type S3Loader struct {
	client S3Client
}

// S3Config contains configuration for the S3 loader.
type S3Config struct {
	Region         string `env:"CA_S3_REGION"`
	AccessKeyID    string `env:"CA_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"CA_S3_SECRET_KEY"`
	Endpoint       string `env:"CA_S3_ENDPOINT"`                             // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"CA_S3_FORCE_PATH_STYLE" envDefault:"false"` // For S3-compatible services like MinIO
}

// S3Option defines a function that configures S3Loader construction.
type S3Option func(*s3Options)

type s3Options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
}

// WithS3Client sets a custom pre-configured S3 client.
// Useful for testing with mocks.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.s3Client = client
	}
}

// WithS3HTTPClient sets a custom HTTP client for S3 requests.
func WithS3HTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// NewS3Loader creates a loader backed by Amazon S3 or an S3-compatible service.
func NewS3Loader(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Loader, error) {
	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	if options.s3Client != nil {
		return &S3Loader{client: options.s3Client}, nil
	}

	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: region is required", ErrInvalidConfig)
	}

	awsOptions := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOptions = append(awsOptions,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretKey,
				"",
			)),
		)
	}
	if options.httpClient != nil {
		awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
	}
	awsOptions = append(awsOptions, options.s3ConfigOptions...)

	awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	return &S3Loader{client: client}, nil
}

// ParseS3Path splits s3://bucket/key into its bucket and key.
func ParseS3Path(path string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(path, S3Prefix)
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	key = strings.TrimPrefix(key, "/")
	if !ok || bucket == "" || key == "" || strings.Contains(key, "..") {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return bucket, key, nil
}

// Exists implements Loader.
func (l *S3Loader) Exists(ctx context.Context, path string) bool {
	bucket, key, err := ParseS3Path(path)
	if err != nil {
		return false
	}
	_, err = l.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

// Open implements Loader.
func (l *S3Loader) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, key, err := ParseS3Path(path)
	if err != nil {
		return nil, err
	}
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, path)
	}
	return out.Body, nil
}

// classifyS3Error converts S3 errors to package errors.
func classifyS3Error(err error, path string) error {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, path)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %s", ErrAccessDenied, path)
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		case "NoSuchBucket":
			return fmt.Errorf("%w: %s", ErrBucketNotFound, path)
		default:
			return fmt.Errorf("%w: %s (code: %s): %v", ErrFailedToOpen, path, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("%w: %s: %v", ErrFailedToOpen, path, err)
}
