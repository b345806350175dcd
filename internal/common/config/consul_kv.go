package config

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/consul/api"
)

// ErrKVKeyNotFound Consul KV 里没有这个 key。
var ErrKVKeyNotFound = fmt.Errorf("consul kv key not found")

// LoadConfigFromConsulKV 从 Consul KV 读取 JSON 配置。
//
// 约定：
// - value 必须是 JSON（结构与 Config 一致）
// - 缺省字段回落到 DefaultConfig
// - 只读一次；是否做动态 watch 由上层决定
func LoadConfigFromConsulKV(client *api.Client, key string) (*Config, error) {
	if client == nil {
		return nil, fmt.Errorf("consul client is nil")
	}
	if key == "" {
		return nil, fmt.Errorf("consul kv key is empty")
	}

	pair, _, err := client.KV().Get(key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get consul kv key=%s: %w", key, err)
	}
	if pair == nil || len(pair.Value) == 0 {
		return nil, fmt.Errorf("key=%s: %w", key, ErrKVKeyNotFound)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(pair.Value, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal consul kv json key=%s: %w", key, err)
	}
	return cfg, nil
}
