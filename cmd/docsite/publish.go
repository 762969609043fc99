package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nephio-oran/docsite/internal/publish"
)

func publishCmd() *cobra.Command {
	var (
		dir    string
		bucket string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload an exported site to S3",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			if bucket == "" {
				bucket = os.Getenv("DOCSITE_BUCKET")
			}
			if bucket == "" {
				return fmt.Errorf("no bucket: pass --bucket or set DOCSITE_BUCKET")
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			cfg, err := config.LoadDefaultConfig(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading AWS config: %w", err)
			}

			pub := publish.New(s3.NewFromConfig(cfg), bucket, prefix, logger)
			uploaded, err := pub.Upload(cmd.Context(), dir)
			if err != nil {
				return err
			}
			logger.Info("publish complete", "objects", uploaded, "bucket", bucket)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "dist", "Exported site directory")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination S3 bucket (or DOCSITE_BUCKET)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")

	return cmd
}
