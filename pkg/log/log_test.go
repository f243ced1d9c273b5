package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	SetupTestLogger()
	buffer := &bytes.Buffer{}
	logrus.SetOutput(buffer)
	t.Cleanup(func() {
		logrus.SetOutput(logrus.StandardLogger().Out)
	})

	return buffer
}

func TestWithCorrelationID(t *testing.T) {
	ctx, correlationID := WithCorrelationID(context.Background())

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFiltersFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buffer := captureOutput(t)

	L.WithFields(Fields{
		"company_id":  "CMP001",
		"remote_addr": "127.0.0.1",
		"path":        "/v1/companies",
	}).Info("teste")

	output := buffer.String()
	assert.Contains(t, output, "company_id=CMP001")
	assert.Contains(t, output, "path=/v1/companies")
	assert.NotContains(t, output, "remote_addr")
}

func TestWithFields_ProductionKeepsFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buffer := captureOutput(t)

	L.WithField("remote_addr", "127.0.0.1").Info("teste")

	assert.Contains(t, buffer.String(), "remote_addr=127.0.0.1")
}

func TestForContext(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buffer := captureOutput(t)

	ctx, correlationID := WithCorrelationID(context.Background())
	ForContext(ctx).Info("teste")

	assert.Contains(t, buffer.String(), correlationID)
}
