package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer = "library_server"

	SubjectAccess  = "access_token"
	SubjectRefresh = "refresh_token"

	RoleUser  = "user"  // 普通读者/馆员
	RoleAdmin = "admin" // 后台管理员
)

// JWTConfig JWT 配置
type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  time.Duration // Access Token 有效期
	RefreshTokenExpiry time.Duration // Refresh Token 有效期
}

// 全局配置，由 Init 函数初始化
var jwtConfig *JWTConfig

// Init 初始化 JWT 配置
func Init(secret string, accessExpiryMinutes, refreshExpiryHours int) {
	jwtConfig = &JWTConfig{
		Secret:             secret,
		AccessTokenExpiry:  time.Duration(accessExpiryMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshExpiryHours) * time.Hour,
	}
}

// RefreshTokenExpiry 返回 Refresh Token 有效期，用于设置 Redis 中 token id 的过期时间
func RefreshTokenExpiry() time.Duration {
	if jwtConfig == nil {
		return 0
	}
	return jwtConfig.RefreshTokenExpiry
}

// Claims 自定义 JWT 声明
type Claims struct {
	UserID  uint   `json:"user_id"`
	Role    string `json:"role"`
	TokenID string `json:"token_id,omitempty"` // 仅 Refresh Token 使用，用于单点互踢
	jwt.RegisteredClaims
}

var errNotInitialized = errors.New("jwt: not initialized")

// GenerateAccessToken 生成 Access Token (短期，用于接口认证)
func GenerateAccessToken(userID uint, role string) (string, error) {
	if jwtConfig == nil {
		return "", errNotInitialized
	}
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtConfig.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
			Subject:   SubjectAccess,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.Secret))
}

// GenerateRefreshToken 生成 Refresh Token (长期，用于刷新 Access Token)
// 返回 token 字符串和 tokenID (存入 Redis 实现单点互踢)
func GenerateRefreshToken(userID uint, role string) (tokenString string, tokenID string, err error) {
	if jwtConfig == nil {
		return "", "", errNotInitialized
	}
	tokenID = uuid.NewString()
	claims := Claims{
		UserID:  userID,
		Role:    role,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtConfig.RefreshTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
			Subject:   SubjectRefresh,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(jwtConfig.Secret))
	return
}

// ParseToken 解析并验证 Token，只接受 HS256
func ParseToken(tokenString string) (*Claims, error) {
	if jwtConfig == nil {
		return nil, errNotInitialized
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtConfig.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
