package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ratel-online/mahjong/config"
	"github.com/ratel-online/mahjong/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func noFile(string) ([]byte, error) {
	return nil, errors.New("no file")
}

func TestLoadWith(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := config.LoadWith(env(nil), noFile)
		require.NoError(t, err)
		assert.Equal(t, consts.DefaultTCPAddr, c.TCPAddr)
		assert.Equal(t, consts.DefaultWSAddr, c.WSAddr)
		assert.Equal(t, consts.DefaultAIMoveDelay, c.AIMoveDelay)
		assert.Equal(t, consts.AIPolicyRandom, c.AIPolicy)
	})

	t.Run("file_then_env", func(t *testing.T) {
		file := []byte(`{"tcp_addr":":7000","ai_move_delay_ms":250,"ai_policy":"isolated"}`)
		c, err := config.LoadWith(env(map[string]string{
			"MAHJONG_CONFIG": "mahjong.json",
			"PORT":           "8080",
			"FRONTEND_URL":   "http://a.test,http://b.test",
		}), func(path string) ([]byte, error) {
			assert.Equal(t, "mahjong.json", path)
			return file, nil
		})
		require.NoError(t, err)
		assert.Equal(t, ":7000", c.TCPAddr)
		assert.Equal(t, ":8080", c.WSAddr)
		assert.Equal(t, 250*time.Millisecond, c.AIMoveDelay)
		assert.Equal(t, consts.AIPolicyIsolated, c.AIPolicy)
		assert.True(t, c.OriginAllowed("http://b.test"))
		assert.False(t, c.OriginAllowed("http://evil.test"))
	})

	t.Run("env_delay_overrides_file", func(t *testing.T) {
		c, err := config.LoadWith(env(map[string]string{"AI_DELAY_MS": "0", "TCP_ADDR": ":1"}), noFile)
		require.NoError(t, err)
		assert.Zero(t, c.AIMoveDelay)
		assert.Equal(t, ":1", c.TCPAddr)
	})

	t.Run("bad_delay", func(t *testing.T) {
		_, err := config.LoadWith(env(map[string]string{"AI_DELAY_MS": "soon"}), noFile)
		require.Error(t, err)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := config.LoadWith(env(map[string]string{"MAHJONG_CONFIG": "gone.json"}), noFile)
		require.Error(t, err)
	})
}

func TestOriginAllowed(t *testing.T) {
	assert.True(t, config.Default().OriginAllowed("http://anything.test"))
	c := config.Config{AllowedOrigins: []string{"*"}}
	assert.True(t, c.OriginAllowed("http://x.test"))
}
