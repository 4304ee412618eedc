// SPDX-License-Identifier: MIT

package store

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the part of *s3.Client the store uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 stores artifacts as objects under Prefix in Bucket.
type S3 struct {
	Client PutObjectAPI
	Bucket string
	Prefix string
}

// S3Config carries optional overrides for S3-compatible endpoints.
type S3Config struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3 builds an S3 store from the default AWS credential chain, applying
// the overrides in cfg.
func NewS3(ctx context.Context, bucket, prefix string, cfg S3Config) (*S3, error) {
	var loaders []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loaders = append(loaders, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		loaders = append(loaders, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("store: load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3{Client: client, Bucket: bucket, Prefix: prefix}, nil
}

func (s *S3) key(name string) string {
	if s.Prefix == "" {
		return name
	}
	return path.Join(s.Prefix, name)
}

// Location returns the s3:// URL of name.
func (s *S3) Location(name string) string { return "s3://" + s.Bucket + "/" + s.key(name) }

// Put uploads data in a single request; S3 objects appear whole or not at all.
func (s *S3) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(s.key(name)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/octet-stream"),
	})
	if err != nil {
		return fmt.Errorf("store: put %s: %w", s.Location(name), err)
	}
	return nil
}

// Open returns an S3 store for "s3://bucket/prefix" locations and a
// filesystem store otherwise.
func Open(ctx context.Context, location string, cfg S3Config) (Store, error) {
	bucket, prefix, isS3, err := ParseS3(location)
	if err != nil {
		return nil, err
	}
	if isS3 {
		return NewS3(ctx, bucket, prefix, cfg)
	}
	return NewFS(location)
}
