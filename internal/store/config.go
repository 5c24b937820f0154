package store

import (
	"database/sql"
	"fmt"
	"strconv"
)

// 阈值配置键
const (
	ConfigKeyFullThreshold = "full_threshold_minutes"
	ConfigKeyHalfMin       = "half_min_minutes"
)

// GetConfig 获取配置项
func (s *Store) GetConfig(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("config key not found: %s", key)
		}
		return "", err
	}
	return value, nil
}

// GetConfigInt 获取整数配置项
func (s *Store) GetConfigInt(key string) (int, error) {
	value, err := s.GetConfig(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

// SetConfig 设置配置项
func (s *Store) SetConfig(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, key, value, value)
	return err
}

// SetConfigInt 设置整数配置项
func (s *Store) SetConfigInt(key string, value int) error {
	return s.SetConfig(key, strconv.Itoa(value))
}

// GetThresholds 读取实动判定阈值；未设置时回落到默认值
// half > full 的组合不在这里拦截，分类分支顺序按原样输出
func (s *Store) GetThresholds(defaultFull, defaultHalf int) (full, half int) {
	full, half = defaultFull, defaultHalf
	if v, err := s.GetConfigInt(ConfigKeyFullThreshold); err == nil && v > 0 {
		full = v
	}
	if v, err := s.GetConfigInt(ConfigKeyHalfMin); err == nil && v > 0 {
		half = v
	}
	return full, half
}

// SetThresholds 保存实动判定阈值
func (s *Store) SetThresholds(full, half int) error {
	if err := s.SetConfigInt(ConfigKeyFullThreshold, full); err != nil {
		return err
	}
	return s.SetConfigInt(ConfigKeyHalfMin, half)
}
