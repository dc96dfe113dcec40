package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
)

// snsAPI is the slice of the SNS client the push service uses.
type snsAPI interface {
	CreatePlatformEndpoint(ctx context.Context, in *awssns.CreatePlatformEndpointInput, optFns ...func(*awssns.Options)) (*awssns.CreatePlatformEndpointOutput, error)
	Publish(ctx context.Context, in *awssns.PublishInput, optFns ...func(*awssns.Options)) (*awssns.PublishOutput, error)
}

type PushService struct {
	devices        *repositories.DeviceRepository
	sns            snsAPI
	fcmPlatformArn string
}

func NewPushService(ctx context.Context, devices *repositories.DeviceRepository, region, fcmPlatformArn string) (*PushService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &PushService{
		devices:        devices,
		sns:            awssns.NewFromConfig(cfg),
		fcmPlatformArn: fcmPlatformArn,
	}, nil
}

type RegisterDeviceReq struct {
	Platform string `json:"platform" binding:"required"` // "android" | "ios"
	Token    string `json:"token" binding:"required"`
}

func tokenHash(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(h[:])
}

// Both platforms go through the FCM platform application.
func (p *PushService) platformArn(platform string) (string, error) {
	switch strings.ToLower(platform) {
	case "android", "ios":
		if p.fcmPlatformArn == "" {
			return "", errors.New("SNS_FCM_ARN not set")
		}
		return p.fcmPlatformArn, nil
	default:
		return "", invalid("unknown platform %q", platform)
	}
}

func (p *PushService) RegisterDevice(ctx context.Context, uid, platform, token string) (*models.UserDevice, error) {
	appArn, err := p.platformArn(platform)
	if err != nil {
		return nil, err
	}

	out, err := p.sns.CreatePlatformEndpoint(ctx, &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(appArn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return nil, fmt.Errorf("create platform endpoint: %w", err)
	}

	return p.devices.Upsert(ctx, &models.UserDevice{
		UID:         uid,
		Platform:    strings.ToLower(platform),
		TokenHash:   tokenHash(token),
		EndpointARN: aws.ToString(out.EndpointArn),
		UpdatedAt:   time.Now(),
	})
}

// PushToUser publishes to every enabled endpoint and reports the first failure.
func (p *PushService) PushToUser(ctx context.Context, uid, title, body string, data map[string]string) error {
	endpoints, err := p.devices.ListEnabled(ctx, uid)
	if err != nil {
		return err
	}
	if len(endpoints) == 0 {
		return nil
	}

	gcm, err := json.Marshal(map[string]any{
		"notification": map[string]string{"title": title, "body": body},
		"data":         data,
	})
	if err != nil {
		return err
	}
	raw, err := json.Marshal(map[string]string{"default": body, "GCM": string(gcm)})
	if err != nil {
		return err
	}

	var firstErr error
	for _, d := range endpoints {
		_, err := p.sns.Publish(ctx, &awssns.PublishInput{
			MessageStructure: aws.String("json"),
			Message:          aws.String(string(raw)),
			TargetArn:        aws.String(d.EndpointARN),
		})
		if err != nil {
			utils.LogError("push to device %d failed: %v", d.ID, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
