// Package publish uploads an exported site tree to S3-compatible storage.
package publish

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// API is the slice of the S3 client the publisher needs.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher mirrors a local directory to a bucket prefix.
type Publisher struct {
	client API
	bucket string
	prefix string
	logger *slog.Logger
}

// New creates a publisher. prefix may be empty; a trailing slash is
// normalized away.
func New(client API, bucket, prefix string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
	}
}

// Upload walks dir and puts every regular file under the configured
// prefix, keying by slash-separated relative path. Returns the number
// of objects written.
func (p *Publisher) Upload(ctx context.Context, dir string) (int, error) {
	uploaded := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if p.prefix != "" {
			key = p.prefix + "/" + key
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(key),
			Body:        file,
			ContentType: aws.String(contentTypeFor(path)),
		})
		if err != nil {
			return fmt.Errorf("putting %s: %w", key, err)
		}

		p.logger.Info("uploaded object", "bucket", p.bucket, "key", key)
		uploaded++
		return nil
	})
	return uploaded, err
}

// contentTypeFor resolves a Content-Type from the file extension.
// S3 serves application/octet-stream otherwise, which browsers refuse
// to render as HTML.
func contentTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
