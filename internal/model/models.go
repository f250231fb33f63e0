package model

// All 需要 AutoMigrate 的全部模型，顺序保证外键依赖先建表
func All() []any {
	return []any{
		&Category{},
		&User{},
		&Follow{},
		&Book{},
		&Admin{},
		&Adminlog{},
		&Oplog{},
		&BorrowInfo{},
		&Review{},
		&ApplyBuy{},
	}
}
