package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-core/internal/config"
)

func TestNewLogger(t *testing.T) {
	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		L := newLogger("portfolio", config.LogConfig{Level: "loud"}, &buf)

		assert.Equal(t, hclog.Info, L.GetLevel())
		L.Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("json output carries fields", func(t *testing.T) {
		var buf bytes.Buffer
		L := newLogger("portfolio", config.LogConfig{Level: "debug", JSON: true}, &buf)

		L.Named("github").Info("loaded repositories", "count", 3)

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "portfolio.github", line["@module"])
		assert.Equal(t, "loaded repositories", line["@message"])
		assert.EqualValues(t, 3, line["count"])
	})
}
