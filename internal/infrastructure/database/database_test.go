package database

import (
	"context"
	"testing"

	"mvz_quote/internal/config"

	"github.com/alicebob/miniredis/v2"
)

func TestConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := ConnectRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	if err != nil {
		t.Fatalf("ConnectRedis: %v", err)
	}
	defer client.Close()

	if err := client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := mr.Get("k"); got != "v" {
		t.Fatalf("expected v, got %q", got)
	}
}

func TestConnectRedis_InvalidURL(t *testing.T) {
	if _, err := ConnectRedis(context.Background(), "http://nope"); err == nil {
		t.Fatal("expected error for non-redis scheme")
	}
}

func TestConnectRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := ConnectRedis(context.Background(), "redis://"+addr); err == nil {
		t.Fatal("expected ping failure")
	}
}

func TestNewDynamoDBAWSConfig(t *testing.T) {
	cfg, err := NewDynamoDBAWSConfig(context.Background(), config.DynamoDBConfig{
		Region:          "eu-central-1",
		Endpoint:        "http://localhost:8000",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	if err != nil {
		t.Fatalf("NewDynamoDBAWSConfig: %v", err)
	}
	if cfg.Region != "eu-central-1" {
		t.Fatalf("expected region eu-central-1, got %q", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %q", creds.AccessKeyID)
	}
	if cfg.EndpointResolverWithOptions == nil {
		t.Fatal("expected custom endpoint resolver")
	}
}
