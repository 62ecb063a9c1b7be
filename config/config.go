package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/mahjong/consts"
)

type Config struct {
	TCPAddr        string        `json:"tcp_addr"`
	WSAddr         string        `json:"ws_addr"`
	AIMoveDelay    time.Duration `json:"-"`
	AIMoveDelayMs  int           `json:"ai_move_delay_ms"`
	AIPolicy       string        `json:"ai_policy"`
	AllowedOrigins []string      `json:"allowed_origins"`
}

func Default() Config {
	return Config{
		TCPAddr:     consts.DefaultTCPAddr,
		WSAddr:      consts.DefaultWSAddr,
		AIMoveDelay: consts.DefaultAIMoveDelay,
		AIPolicy:    consts.AIPolicyRandom,
	}
}

// Load reads the file named by MAHJONG_CONFIG, if set, then applies environment overrides.
func Load() (Config, error) {
	return LoadWith(os.Getenv, os.ReadFile)
}

func LoadWith(getenv func(string) string, readFile func(string) ([]byte, error)) (Config, error) {
	c := Default()
	if path := getenv("MAHJONG_CONFIG"); path != "" {
		data, err := readFile(path)
		if err != nil {
			return c, fmt.Errorf("failed to read config: %w", err)
		}
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("failed to unmarshal config: %w", err)
		}
		if c.AIMoveDelayMs > 0 {
			c.AIMoveDelay = time.Duration(c.AIMoveDelayMs) * time.Millisecond
		}
	}
	if port := getenv("PORT"); port != "" {
		c.WSAddr = ":" + port
	}
	if addr := getenv("TCP_ADDR"); addr != "" {
		c.TCPAddr = addr
	}
	if delay := getenv("AI_DELAY_MS"); delay != "" {
		ms, err := strconv.Atoi(delay)
		if err != nil || ms < 0 {
			return c, fmt.Errorf("invalid AI_DELAY_MS %q", delay)
		}
		c.AIMoveDelay = time.Duration(ms) * time.Millisecond
	}
	if policy := getenv("AI_POLICY"); policy != "" {
		c.AIPolicy = policy
	}
	if origins := getenv("FRONTEND_URL"); origins != "" {
		c.AllowedOrigins = strings.Split(origins, ",")
	}
	c.AIMoveDelayMs = int(c.AIMoveDelay / time.Millisecond)
	return c, nil
}

// OriginAllowed reports whether a browser origin may open a websocket. An empty list allows all.
func (c Config) OriginAllowed(origin string) bool {
	if len(c.AllowedOrigins) == 0 || origin == "" {
		return true
	}
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || strings.TrimSpace(allowed) == origin {
			return true
		}
	}
	return false
}
