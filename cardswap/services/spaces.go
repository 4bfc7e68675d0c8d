package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cardswap/matchmaker/cardswap/config"
)

type SpacesConfig struct {
	Key        string `toml:"key"`
	Secret     string `toml:"secret"`
	Region     string `toml:"region"`
	Bucket     string `toml:"bucket"`
	ExportRoot string `toml:"export_root"`
}

// Enabled reports whether uploads are configured at all.
func (c SpacesConfig) Enabled() bool {
	return c.Key != "" && c.Secret != "" && c.Bucket != "" && c.Region != ""
}

type SpacesService struct {
	client     *s3.Client
	bucket     string
	region     string
	exportRoot string
}

func NewSpacesService(ctx context.Context, cfg SpacesConfig) (*SpacesService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, "")),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load Spaces config: %w", err)
	}

	return &SpacesService{
		client:     s3.NewFromConfig(awsCfg),
		bucket:     cfg.Bucket,
		region:     cfg.Region,
		exportRoot: strings.Trim(cfg.ExportRoot, "/"),
	}, nil
}

// ObjectKey places name under the configured export root.
func (s *SpacesService) ObjectKey(name string) string {
	if s.exportRoot == "" {
		return name
	}
	return path.Join(s.exportRoot, name)
}

// UploadExport stores an exported workbook and returns its public URL.
func (s *SpacesService) UploadExport(ctx context.Context, name string, body []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.UploadTimeout)
	defer cancel()

	key := s.ObjectKey(name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(config.ExportContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	slog.Info("Export uploaded",
		slog.String("type", "sys"),
		slog.String("bucket", s.bucket),
		slog.String("key", key),
		slog.Int("bytes", len(body)))
	return s.URL(key), nil
}

func (s *SpacesService) URL(key string) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, key)
}
