package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
)

const (
	otelAttrObjectKey = "s3.object_key"
	otelAttrBucket    = "s3.bucket"
	otelAttrSize      = "s3.size"
)

// Object is a file headed for the bucket. An empty Bucket means the configured one.
type Object struct {
	Bucket      string
	Directory   string
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (o Object) key() string {
	return path.Join(o.Directory, o.Name)
}

type S3 interface {
	Put(ctx context.Context, object Object) (url string, err error)
	Delete(ctx context.Context, bucket, key string) error
	KeyFromURL(bucket, url string) (key string)
}

type s3Impl struct {
	client *s3.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	conf := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.SecretAccessKey, "")),
		awsConfig.WithRegion(conf.Region),
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load aws configuration, id proof uploads will fail")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if conf.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(conf.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (svc *s3Impl) bucket(name string) string {
	if name == constant.Empty {
		return svc.cfg.External.S3.BucketName
	}

	return name
}

func (svc *s3Impl) Put(ctx context.Context, object Object) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucket := svc.bucket(object.Bucket)
	key := object.key()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
		otelAttrSize:      object.Size,
	})

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   object.Body,
	}

	if object.ContentType != constant.Empty {
		input.ContentType = aws.String(object.ContentType)
	}

	if object.Size > 0 {
		input.ContentLength = aws.Int64(object.Size)
	}

	if _, err = svc.client.PutObject(ctx, input); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to put object")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return strings.TrimSuffix(svc.cfg.External.S3.PublicDomain, "/") + "/" + key, nil
}

func (svc *s3Impl) Delete(ctx context.Context, bucket, key string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucket = svc.bucket(bucket)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// KeyFromURL returns the object key behind a URL built by Put, or empty when the URL is foreign.
func (svc *s3Impl) KeyFromURL(bucket, url string) (key string) {
	if url == constant.Empty {
		return constant.Empty
	}

	bucket = svc.bucket(bucket)
	publicDomain := strings.TrimSuffix(svc.cfg.External.S3.PublicDomain, "/")
	apiEndpoint := strings.TrimSuffix(svc.cfg.External.S3.APIEndpoint, "/")

	var prefixes []string

	for _, base := range []string{publicDomain, apiEndpoint} {
		if base != constant.Empty {
			prefixes = append(prefixes, base+"/"+bucket+"/")
		}
	}

	if publicDomain != constant.Empty {
		prefixes = append(prefixes, publicDomain+"/")
	}

	for _, prefix := range prefixes {
		if key, ok := strings.CutPrefix(url, prefix); ok && key != constant.Empty {
			return key
		}
	}

	return constant.Empty
}
