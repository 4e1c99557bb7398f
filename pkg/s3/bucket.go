package bucket

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type Archiver struct {
	client *s3.S3
	bucket string
}

// NewArchiver builds the S3 client once at startup. Incomplete AWS
// configuration surfaces here as an error, never inside the request
// pipeline.
func NewArchiver(accessKeyID, secretAccessKey, region, bucket string) (*Archiver, error) {
	if accessKeyID == "" || secretAccessKey == "" || region == "" {
		return nil, fmt.Errorf("AWS credentials or region are not set")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKeyID, secretAccessKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %v", err)
	}

	return &Archiver{
		client: s3.New(sess),
		bucket: bucket,
	}, nil
}

// ArchiveNotification stores the raw webhook body under the given key so
// every processor callback stays available for later audit.
func (a *Archiver) ArchiveNotification(body []byte, key string) (string, error) {
	reader := bytes.NewReader(body)

	_, err := a.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload notification to S3: %v", err)
	}

	objectURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", a.bucket, key)
	return objectURL, nil
}
