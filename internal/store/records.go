package store

import (
	"fmt"
	"time"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

const dateLayout = "2006-01-02"

// UpsertRecords 批量写入勤务记录
// (employee_id, date) 冲突时后写覆盖（跨页重复按 last-write-wins 合并）
func (s *Store) UpsertRecords(records []model.ShiftRecord, sourceFile string) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO shift_records (
			employee_id, date, weekday, week_index,
			start_time, end_time, minutes, slot,
			is_half, is_weekday, raw_status, source_file
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id, date) DO UPDATE SET
			weekday = excluded.weekday,
			week_index = excluded.week_index,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			minutes = excluded.minutes,
			slot = excluded.slot,
			is_half = excluded.is_half,
			is_weekday = excluded.is_weekday,
			raw_status = excluded.raw_status,
			source_file = excluded.source_file
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.EmployeeID, r.Date.Format(dateLayout), r.Weekday, r.WeekIndex,
			r.StartTime, r.EndTime, r.Minutes, string(r.Slot),
			boolToInt(r.IsHalf), boolToInt(r.IsWeekday), r.RawStatus, sourceFile,
		)
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListRecords 按月查询勤务记录；month 为空返回全部
// 输出按 (employee_id, date) 排序，保证可复现
func (s *Store) ListRecords(month string) ([]model.ShiftRecord, error) {
	query := `
		SELECT employee_id, date, weekday, week_index,
			start_time, end_time, minutes, slot,
			is_half, is_weekday, raw_status
		FROM shift_records
	`
	args := []interface{}{}
	if month != "" {
		query += " WHERE substr(date, 1, 7) = ?"
		args = append(args, month)
	}
	query += " ORDER BY employee_id, date"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query shift records failed: %w", err)
	}
	defer rows.Close()

	var out []model.ShiftRecord
	for rows.Next() {
		var r model.ShiftRecord
		var dateStr, slot string
		var isHalf, isWeekday int
		if err := rows.Scan(
			&r.EmployeeID, &dateStr, &r.Weekday, &r.WeekIndex,
			&r.StartTime, &r.EndTime, &r.Minutes, &slot,
			&isHalf, &isWeekday, &r.RawStatus,
		); err != nil {
			return nil, fmt.Errorf("scan shift record failed: %w", err)
		}

		d, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			continue
		}
		r.Date = d
		r.Slot = model.Slot(slot)
		r.IsHalf = isHalf != 0
		r.IsWeekday = isWeekday != 0
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shift records failed: %w", err)
	}
	return out, nil
}

// MonthStat 存在数据的月份统计
type MonthStat struct {
	Month         string `json:"month"` // YYYY-MM
	RecordCount   int    `json:"recordCount"`
	EmployeeCount int    `json:"employeeCount"`
}

// ListAvailableMonths 列出存在数据的月份（倒序）
func (s *Store) ListAvailableMonths() ([]MonthStat, error) {
	rows, err := s.db.Query(`
		SELECT substr(date, 1, 7) AS ym,
			COUNT(1) AS record_count,
			COUNT(DISTINCT employee_id) AS employee_count
		FROM shift_records
		GROUP BY ym
		ORDER BY ym DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query available months failed: %w", err)
	}
	defer rows.Close()

	var out []MonthStat
	for rows.Next() {
		var it MonthStat
		if err := rows.Scan(&it.Month, &it.RecordCount, &it.EmployeeCount); err != nil {
			return nil, fmt.Errorf("scan available months failed: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate available months failed: %w", err)
	}
	return out, nil
}

// CountRecords 按月统计记录数；month 为空统计全部
func (s *Store) CountRecords(month string) (int, error) {
	query := "SELECT COUNT(1) FROM shift_records"
	args := []interface{}{}
	if month != "" {
		query += " WHERE substr(date, 1, 7) = ?"
		args = append(args, month)
	}

	var count int
	if err := s.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count shift records failed: %w", err)
	}
	return count, nil
}

// ClearMonth 删除指定月份的记录
func (s *Store) ClearMonth(month string) error {
	_, err := s.db.Exec("DELETE FROM shift_records WHERE substr(date, 1, 7) = ?", month)
	if err != nil {
		return fmt.Errorf("clear month %s failed: %w", month, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
