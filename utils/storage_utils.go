package utils

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// MediaStorage uploads listing media to an S3-compatible object store.
type MediaStorage struct {
	client   *s3.S3
	bucket   string
	endpoint string
}

func NewMediaStorage(endpoint, region, bucket, accessKey, secretKey string) (*MediaStorage, error) {
	if endpoint == "" || bucket == "" {
		return nil, errors.New("media storage is not configured")
	}
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Endpoint:    aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, err
	}
	return &MediaStorage{
		client:   s3.New(sess),
		bucket:   bucket,
		endpoint: endpoint,
	}, nil
}

// Upload stores the file under folder/fileName and returns its public URL.
func (m *MediaStorage) Upload(file []byte, fileName, folder, contentType string) (string, error) {
	if m == nil {
		return "", errors.New("media storage is not configured")
	}
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := m.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(m.bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", m.endpoint, m.bucket, filePath), nil
}
