package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrSourceNotFound is returned when the seed file or object does not exist.
var ErrSourceNotFound = errors.New("seed source not found")

// Source yields a batch of raw external records.
type Source interface {
	Load(ctx context.Context) ([]map[string]any, error)
	Location() string
}

// Decode reads a JSON array of objects. Numbers are kept as json.Number so
// large integer identifiers survive intact.
func Decode(r io.Reader) ([]map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding seed data: %w", err)
	}
	return records, nil
}

// FileSource reads records from a local JSON file.
type FileSource struct {
	Path string
}

// Location returns the file path.
func (s *FileSource) Location() string { return s.Path }

// Load reads and decodes the file.
func (s *FileSource) Load(_ context.Context) ([]map[string]any, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Path)
		}
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// S3API is the subset of the S3 client used by S3Source.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Options configures the S3 client built by OpenSource.
type S3Options struct {
	Region    string
	Endpoint  string // optional; set for MinIO or other S3-compatible stores
	PathStyle bool
}

// S3Source reads records from one S3 object.
type S3Source struct {
	Client S3API
	Bucket string
	Key    string
}

// NewS3Source builds an S3Source for an s3://bucket/key location using the
// default AWS credentials chain.
func NewS3Source(ctx context.Context, location string, opts S3Options) (*S3Source, error) {
	bucket, key, err := parseS3Location(location)
	if err != nil {
		return nil, err
	}

	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = opts.PathStyle
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return &S3Source{Client: client, Bucket: bucket, Key: key}, nil
}

// Location returns the s3:// URL of the object.
func (s *S3Source) Location() string { return "s3://" + s.Bucket + "/" + s.Key }

// Load downloads and decodes the object.
func (s *S3Source) Load(ctx context.Context) ([]map[string]any, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		var noBucket *types.NoSuchBucket
		if errors.As(err, &noKey) || errors.As(err, &noBucket) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Location())
		}
		return nil, fmt.Errorf("fetching %s: %w", s.Location(), err)
	}
	defer func() { _ = out.Body.Close() }()

	return Decode(out.Body)
}

// OpenSource returns the Source for a location: s3://bucket/key selects
// S3Source, anything else is a local file path.
func OpenSource(ctx context.Context, location string, opts S3Options) (Source, error) {
	if strings.HasPrefix(location, "s3://") {
		return NewS3Source(ctx, location, opts)
	}
	return &FileSource{Path: location}, nil
}

func parseS3Location(location string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(location, "s3://"), "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 location %q: expected s3://bucket/key", location)
	}
	return bucket, key, nil
}
