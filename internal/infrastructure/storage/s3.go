package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/tu-usuario/kyc-api/internal/application/kyc"
	"github.com/tu-usuario/kyc-api/pkg/config"
)

var _ kyc.DocumentStore = (*S3Store)(nil)

// S3Store guarda documentos de identidad en un bucket S3 compatible (R2) y
// devuelve la URL pública estable del objeto.
type S3Store struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewS3Store construye el cliente contra el endpoint del account configurado.
func NewS3Store(cfg config.StorageConfig) (*S3Store, error) {
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{URL: endpoint, SigningRegion: "auto"}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("configurar cliente S3: %w", err)
	}

	return &S3Store{
		client:     s3.NewFromConfig(awsCfg),
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload sube el blob y devuelve su URL pública.
func (s *S3Store) Upload(key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("subir objeto a S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicBase, escapeKey(key)), nil
}

// escapeKey escapa cada segmento del key preservando los separadores.
func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
