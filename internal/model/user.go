// Package model 定义数据库实体模型
// 实体只描述数据形状，数据访问统一走 repository
package model

import (
	"time"

	"golang.org/x/crypto/bcrypt" // 密码哈希库
	"gorm.io/gorm"
)

// User 读者/职工
// 对应数据库 user 表
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Openid 微信小程序 openid
	Openid string `gorm:"column:openid;type:varchar(50);comment:微信openid" json:"openid"`

	// Nickname 昵称
	Nickname string `gorm:"column:nickname;type:varchar(100);comment:昵称" json:"nickname"`

	// Truename 真实姓名，只在注册时检查重名，修改资料时不限制
	Truename string `gorm:"column:truename;type:varchar(100);not null;index:idx_user_truename;comment:真实姓名" json:"truename"`

	// Password bcrypt 哈希，不参与 JSON 输出
	Password string `gorm:"column:password;type:varchar(100);not null;comment:密码" json:"-"`

	// Phone 手机号，唯一
	Phone string `gorm:"column:phone;type:varchar(11);not null;uniqueIndex:uk_user_phone;comment:手机号" json:"phone"`

	// Avatar 头像 URL
	Avatar string `gorm:"column:avatar;type:varchar(200);comment:头像" json:"avatar"`

	// Username / Email 可选账号字段，NULL 不参与唯一约束
	Username *string `gorm:"column:username;type:varchar(100);uniqueIndex:uk_user_username;comment:用户名" json:"username"`
	Email    *string `gorm:"column:email;type:varchar(120);uniqueIndex:uk_user_email;comment:邮箱" json:"email"`

	// RoleID 0=普通职工 1=管理员 2=组长
	RoleID int8 `gorm:"column:role_id;not null;default:0;comment:角色" json:"role_id"`

	// Status 0=待审核 1=审核通过 2=审核不通过 3=拉黑
	Status int8 `gorm:"column:status;not null;default:0;index;comment:状态" json:"status"`

	// AddTime 注册时间，只在插入时写入
	AddTime time.Time `gorm:"column:addtime;index;autoCreateTime;<-:create;comment:注册时间" json:"addtime"`

	// RawPassword 明文密码（不存入数据库），在 BeforeSave 中加密
	RawPassword string `gorm:"-" json:"-"`
}

// MaxPasswordBytes bcrypt 只接受 72 字节以内的明文
const MaxPasswordBytes = 72

// TableName 指定表名
func (User) TableName() string {
	return "user"
}

// BeforeSave 设置了 RawPassword 时写入哈希并清空明文
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.RawPassword == "" {
		return nil
	}
	hash, err := hashPassword(u.RawPassword)
	if err != nil {
		return err
	}
	u.Password = hash
	u.RawPassword = ""
	return nil
}

// CheckPassword 校验密码
func (u *User) CheckPassword(plaintext string) bool {
	return checkPassword(u.Password, plaintext)
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
