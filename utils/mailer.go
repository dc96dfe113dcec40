package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESMailer sends plain-text account mails through Amazon SES.
type SESMailer struct {
	client *ses.Client
	from   string
}

func NewSESMailer(ctx context.Context, region, from string) (*SESMailer, error) {
	if from == "" {
		return nil, errors.New("SES_EMAIL not set")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), from: from}, nil
}

func (m *SESMailer) send(ctx context.Context, to, subject, body string) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body:    &types.Body{Text: &types.Content{Data: aws.String(body)}},
		},
		Source: aws.String(m.from),
	})
	if err != nil {
		LogError("SES send error: %v", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

func (m *SESMailer) SendResetEmail(ctx context.Context, to, code string) error {
	body := fmt.Sprintf("Your VitaZen password reset code is: %s\n\nIt expires in 15 minutes.", code)
	return m.send(ctx, to, "VitaZen password reset", body)
}
