package blobstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	log "github.com/sirupsen/logrus"
)

const (
	logPrefix      = "blobstore"
	defaultTimeout = 30 * time.Second
	imagePrefix    = "donations"
)

var ErrInvalidKey = fmt.Errorf("invalid object key")

// ImageStore keeps uploaded donation images and serves them by public URL
type ImageStore interface {
	Put(ctx context.Context, fileName, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, fileName string) error
	URL(fileName string) string
}

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// PublicURL is the base address objects are served from
	PublicURL string
}

type s3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// New returns an ImageStore on an S3 compatible service
func New(ctx context.Context, cfg Config) (ImageStore, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	}

	if cfg.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               cfg.Endpoint,
				HostnameImmutable: true,
			}, nil
		})
		opts = append(opts, config.WithEndpointResolverWithOptions(resolver))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	publicURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &s3Store{
		client:    s3.NewFromConfig(awsConfig),
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}, nil
}

func objectKey(fileName string) (string, error) {
	if fileName == "" || strings.ContainsAny(fileName, "/\\") || fileName == "." || fileName == ".." {
		return "", ErrInvalidKey
	}
	return path.Join(imagePrefix, fileName), nil
}

// Put uploads an image and returns its public URL
func (s *s3Store) Put(ctx context.Context, fileName, contentType string, body io.Reader, size int64) (string, error) {
	key, err := objectKey(fileName)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		ACL:           types.ObjectCannedACLPublicRead,
	}); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "key": key, "error": err}).Error("put object")
		return "", err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "key": key, "size": size}).Info("image stored")
	return s.URL(fileName), nil
}

// Delete removes an uploaded image
func (s *s3Store) Delete(ctx context.Context, fileName string) error {
	key, err := objectKey(fileName)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "key": key, "error": err}).Error("delete object")
		return err
	}

	return nil
}

func (s *s3Store) URL(fileName string) string {
	return s.publicURL + "/" + imagePrefix + "/" + fileName
}
