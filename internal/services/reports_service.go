package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"stockwatch/internal/models"
)

// ReportService archives alert snapshots as JSON objects so operators can
// diff a company's low-stock picture over time.
type ReportService interface {
	EnsureBucketExists(ctx context.Context) error
	UploadAlertReport(ctx context.Context, companyID int64, generatedAt time.Time, list *models.AlertList) (string, error)
	GetPresignedURL(objectName string, expiry time.Duration) (string, error)
}

// AlertReport is the stored report envelope.
type AlertReport struct {
	CompanyID   int64                `json:"company_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Alerts      []models.AlertRecord `json:"alerts"`
	TotalAlerts int                  `json:"total_alerts"`
}

type minioReportService struct {
	client *minio.Client
	bucket string
}

func NewMinioReportService(endpoint, accessKey, secretKey string, useSSL bool, bucket string) (ReportService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioReportService{client: client, bucket: bucket}, nil
}

func (m *minioReportService) EnsureBucketExists(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (m *minioReportService) UploadAlertReport(ctx context.Context, companyID int64, generatedAt time.Time, list *models.AlertList) (string, error) {
	report := AlertReport{
		CompanyID:   companyID,
		GeneratedAt: generatedAt,
		Alerts:      list.Alerts,
		TotalAlerts: list.TotalAlerts,
	}
	data, err := json.Marshal(report)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("alerts/%d/%s-%s.json", companyID, generatedAt.UTC().Format("2006-01-02"), uuid.NewString())
	_, err = m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", err
	}
	return objectName, nil
}

func (m *minioReportService) GetPresignedURL(objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(context.Background(), m.bucket, objectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}
