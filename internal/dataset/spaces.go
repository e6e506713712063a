package dataset

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
)

// SpacesSource reads a JSON export of the dataset from a DigitalOcean Spaces
// (S3 compatible) bucket.
type SpacesSource struct {
	client s3iface.S3API
	bucket string
	key    string
}

func NewSpacesSource(endpoint, region, bucket, key, accessKey, secretKey string) (*SpacesSource, error) {
	config := &aws.Config{
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}
	if accessKey != "" {
		config.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return newSpacesSource(s3.New(sess), bucket, key), nil
}

func newSpacesSource(client s3iface.S3API, bucket, key string) *SpacesSource {
	return &SpacesSource{client: client, bucket: bucket, key: key}
}

func (ss *SpacesSource) Fetch(ctx context.Context) ([]reading.Record, error) {
	out, err := ss.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ss.bucket),
		Key:    aws.String(ss.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download %s from Spaces: %w", ss.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from Spaces: %w", ss.key, err)
	}
	return Decode(data)
}
