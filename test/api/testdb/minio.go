//go:build api

package testdb

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// MinIOAccessKey is the root user of the test MinIO.
	MinIOAccessKey = "minioadmin"
	// MinIOSecretKey is the root password of the test MinIO.
	MinIOSecretKey = "minioadmin"
	// MinIOBucket holds church media during tests.
	MinIOBucket = "ceslar-media-test"
)

// MinIOContainer wraps a MinIO testcontainer standing in for S3.
type MinIOContainer struct {
	Container testcontainers.Container
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Client    *s3.Client
}

// SetupMinIO starts a MinIO testcontainer and creates the media bucket.
func SetupMinIO(ctx context.Context) (*MinIOContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     MinIOAccessKey,
				"MINIO_ROOT_PASSWORD": MinIOSecretKey,
			},
			Cmd:        []string{"server", "/data"},
			WaitingFor: wait.ForHTTP("/minio/health/ready").WithPort("9000/tcp"),
		},
		Started: true,
	})
	if err != nil {
		return nil, err
	}

	endpoint, err := container.PortEndpoint(ctx, "9000/tcp", "")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	client, err := newS3Client(ctx, endpoint)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	mc := &MinIOContainer{
		Container: container,
		Endpoint:  endpoint,
		AccessKey: MinIOAccessKey,
		SecretKey: MinIOSecretKey,
		Bucket:    MinIOBucket,
		Client:    client,
	}

	if _, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(mc.Bucket)}); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return mc, nil
}

func newS3Client(ctx context.Context, endpoint string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(MinIOAccessKey, MinIOSecretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String("http://" + endpoint)
		o.UsePathStyle = true
	}), nil
}

// Cleanup terminates the MinIO container.
func (mc *MinIOContainer) Cleanup(ctx context.Context) error {
	if mc.Container != nil {
		return mc.Container.Terminate(ctx)
	}
	return nil
}

// ClearBucket removes every object, one listing page (up to 1000 keys) per
// batch delete.
func (mc *MinIOContainer) ClearBucket(ctx context.Context) error {
	paginator := s3.NewListObjectsV2Paginator(mc.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(mc.Bucket),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return err
		}
		if len(page.Contents) == 0 {
			continue
		}

		objects := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			objects = append(objects, types.ObjectIdentifier{Key: obj.Key})
		}

		if _, err := mc.Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(mc.Bucket),
			Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
		}); err != nil {
			return err
		}
	}
	return nil
}

// PutObject stores a small text object, standing in for a client upload.
func (mc *MinIOContainer) PutObject(ctx context.Context, key, body string) error {
	_, err := mc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(mc.Bucket),
		Key:    aws.String(key),
		Body:   strings.NewReader(body),
	})
	return err
}

// ObjectExists checks if an object exists in the bucket.
func (mc *MinIOContainer) ObjectExists(ctx context.Context, key string) bool {
	_, err := mc.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(mc.Bucket),
		Key:    aws.String(key),
	})
	return err == nil
}
