package repository

import (
	"errors"
	"strings"

	"library_server/pkg/errorx"
	"library_server/pkg/pagination"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// mysqlDuplicateEntry MySQL 唯一键冲突错误号
const mysqlDuplicateEntry = 1062

// ==================== 错误包装辅助函数 ====================

// wrapDBError 包装数据库错误
//   - ErrRecordNotFound -> CodeNotFound
//   - 唯一约束冲突 -> CodeDuplicate
//   - 其他错误 -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errorx.Wrap(err, classify(err), msg)
}

// wrapDBErrorf 功能同 wrapDBError，支持格式化消息
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errorx.Wrapf(err, classify(err), format, args...)
}

func classify(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errorx.CodeNotFound
	case isDuplicateEntryError(err):
		return errorx.CodeDuplicate
	default:
		return errorx.CodeDBError
	}
}

// isDuplicateEntryError 识别 MySQL 与 SQLite 的唯一约束冲突
func isDuplicateEntryError(err error) bool {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || // SQLite
		strings.Contains(msg, "duplicate entry") // MySQL 文本
}

// DuplicateColumn 从唯一约束冲突中找出冲突的列
// SQLite 报 "UNIQUE constraint failed: user.phone"，MySQL 报 "... for key 'user.uk_user_phone'"
// 两者都带列名，按 candidates 顺序返回第一个命中的列；找不到返回空串
func DuplicateColumn(err error, candidates ...string) string {
	if err == nil || !errorx.IsDuplicate(err) {
		return ""
	}
	msg := strings.ToLower(err.Error())
	for _, c := range candidates {
		if strings.Contains(msg, c) {
			return c
		}
	}
	return ""
}

// paginate 先统计总数再取一页
// scope 每次都作用在新的会话上，避免 Count 污染后续查询；preloads 只用于取数据
func paginate[T any](db *gorm.DB, scope func(*gorm.DB) *gorm.DB, order string, p pagination.Params, preloads ...string) ([]T, int64, error) {
	var total int64
	if err := scope(db.Model(new(T))).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]T, 0, p.Limit())
	// 先按页数判断，超大页码下 Offset 会溢出
	if total == 0 || p.Page > pagination.TotalPages(total, p.PerPage) {
		return items, total, nil
	}
	query := scope(db.Model(new(T)))
	for _, name := range preloads {
		query = query.Preload(name)
	}
	if err := query.Order(order).Offset(p.Offset()).Limit(p.Limit()).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// noScope 不附加任何条件
func noScope(db *gorm.DB) *gorm.DB {
	return db
}

// transition 条件更新状态字段
// 0 行受影响时区分记录不存在和状态不匹配
func transition[T any](db *gorm.DB, id uint, from, to int8, label string) error {
	res := db.Model(new(T)).Where("id = ? AND status = ?", id, from).Update("status", to)
	if res.Error != nil {
		return wrapDBErrorf(res.Error, "更新%s状态 id=%d", label, id)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var n int64
	if err := db.Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return wrapDBErrorf(err, "查询%s id=%d", label, id)
	}
	if n == 0 {
		return errorx.Newf(errorx.CodeNotFound, "%s不存在", label)
	}
	return errorx.Newf(errorx.CodeConflict, "%s已处理，不能重复审批", label)
}
