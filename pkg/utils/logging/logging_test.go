package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/regtrack/regtrack/pkg/utils/logging"
)

func TestFromFallsBackToDefault(t *testing.T) {
	gt.V(t, logging.From(context.Background())).Equal(logging.Default())
}

func TestWithCarriesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)
	ctx := logging.With(context.Background(), logger)

	logging.From(ctx).Info("hello", "key", "value")

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record)).Required()
	gt.V(t, record["msg"]).Equal("hello")
	gt.V(t, record["key"]).Equal("value")
}

func TestSecretFieldsAreRedacted(t *testing.T) {
	type credentials struct {
		User  string
		Token string `masq:"secret"`
	}

	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)
	logger.Info("configured", "credentials", credentials{User: "alice", Token: "s3cr3t"})

	out := buf.String()
	gt.B(t, strings.Contains(out, "s3cr3t")).False()
	gt.B(t, strings.Contains(out, "alice")).True()
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelWarn, logging.FormatJSON)

	logger.Debug("quiet")
	logger.Info("quiet too")
	gt.V(t, buf.Len()).Equal(0)

	logger.Warn("loud")
	gt.B(t, buf.Len() > 0).True()
}
