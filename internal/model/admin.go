package model

import (
	"time"

	"gorm.io/gorm"
)

// Admin 后台管理员
// pwd 只保存 bcrypt 哈希，登录时用 CheckPwd 比较
type Admin struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Name    string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uk_admin_name;comment:管理员名" json:"name"`
	Pwd     string    `gorm:"column:pwd;type:varchar(100);not null;comment:密码哈希" json:"-"`
	AddTime time.Time `gorm:"column:addtime;index;autoCreateTime;<-:create" json:"addtime"`

	RawPwd string `gorm:"-" json:"-"`
}

func (Admin) TableName() string {
	return "admin"
}

// BeforeSave 与 User 相同，明文只经过 RawPwd
func (a *Admin) BeforeSave(tx *gorm.DB) error {
	if a.RawPwd == "" {
		return nil
	}
	hash, err := hashPassword(a.RawPwd)
	if err != nil {
		return err
	}
	a.Pwd = hash
	a.RawPwd = ""
	return nil
}

// CheckPwd 校验管理员密码
func (a *Admin) CheckPwd(plaintext string) bool {
	return checkPassword(a.Pwd, plaintext)
}

// Adminlog 管理员登录日志，只追加
type Adminlog struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	AdminID uint      `gorm:"column:admin_id;not null;index" json:"admin_id"`
	IP      string    `gorm:"column:ip;type:varchar(100);comment:登录ip" json:"ip"`
	AddTime time.Time `gorm:"column:addtime;index;autoCreateTime;<-:create" json:"addtime"`
}

func (Adminlog) TableName() string {
	return "adminlog"
}

// Oplog 管理员操作日志，只追加
type Oplog struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	AdminID uint      `gorm:"column:admin_id;not null;index" json:"admin_id"`
	IP      string    `gorm:"column:ip;type:varchar(100);comment:操作ip" json:"ip"`
	Reason  string    `gorm:"column:reason;type:varchar(200);comment:操作原因" json:"reason"`
	AddTime time.Time `gorm:"column:addtime;index;autoCreateTime;<-:create" json:"addtime"`
}

func (Oplog) TableName() string {
	return "oplog"
}
