package database

import (
	"fmt"
	"log"
	"time"
)

// Close đóng connection pool. Safe to call nhiều lần.
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		return
	}
	log.Println("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
	log.Println("[DATABASE] Connection pool closed")
}

// PoolStats là snapshot rút gọn của pgxpool metrics, dùng cho health endpoint
type PoolStats struct {
	AcquiredConns int32 `json:"acquiredConns"`
	IdleConns     int32 `json:"idleConns"`
	TotalConns    int32 `json:"totalConns"`
	MaxConns      int32 `json:"maxConns"`

	AcquireCount    int64         `json:"acquireCount"`
	AcquireDuration time.Duration `json:"-"`
}

// Stats trả về pool statistics hiện tại
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquiredConns:   raw.AcquiredConns(),
		IdleConns:       raw.IdleConns(),
		TotalConns:      raw.TotalConns(),
		MaxConns:        raw.MaxConns(),
		AcquireCount:    raw.AcquireCount(),
		AcquireDuration: raw.AcquireDuration(),
	}, nil
}
