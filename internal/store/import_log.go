package store

import (
	"fmt"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

// AppendImportLog 追加一条导入日志
func (s *Store) AppendImportLog(importID string, report model.ImportReport) error {
	_, err := s.db.Exec(`
		INSERT INTO import_logs (import_id, filename, target_month, total_records, stored_records, warning)
		VALUES (?, ?, ?, ?, ?, ?)
	`, importID, report.Filename, report.TargetMonth, report.TotalRecords, report.Stored, report.Warning)
	if err != nil {
		return fmt.Errorf("failed to append import log: %w", err)
	}
	return nil
}

// ImportLogEntry 导入日志行
type ImportLogEntry struct {
	ImportID      string `json:"importId"`
	Filename      string `json:"filename"`
	TargetMonth   string `json:"targetMonth"`
	TotalRecords  int    `json:"totalRecords"`
	StoredRecords int    `json:"storedRecords"`
	Warning       string `json:"warning"`
	CreatedAt     string `json:"createdAt"`
}

// ListImportLogs 最近的导入日志（倒序，最多 limit 条）
func (s *Store) ListImportLogs(limit int) ([]ImportLogEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT import_id, filename, target_month, total_records, stored_records, warning, created_at
		FROM import_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query import logs failed: %w", err)
	}
	defer rows.Close()

	var out []ImportLogEntry
	for rows.Next() {
		var it ImportLogEntry
		if err := rows.Scan(&it.ImportID, &it.Filename, &it.TargetMonth,
			&it.TotalRecords, &it.StoredRecords, &it.Warning, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan import log failed: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate import logs failed: %w", err)
	}
	return out, nil
}
