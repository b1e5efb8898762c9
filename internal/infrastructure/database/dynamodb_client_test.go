package database

import (
	"context"
	"testing"

	"budget_portal/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig_LocalEndpointUsesStaticCredentials(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), config.DynamoDBConfig{
		Region:          "sa-east-1",
		Endpoint:        "http://localhost:8000",
		EstimationTable: "estimations",
	})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
	assert.Equal(t, "local", creds.SecretAccessKey)
}

func TestConnectDynamoDB(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), config.DynamoDBConfig{
		Region:          "us-east-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		Endpoint:        "http://localhost:8000",
		EstimationTable: "estimations",
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)
}
