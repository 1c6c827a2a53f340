package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"dispatch_admin/internal/config"
)

// 后台角色
const (
	RoleAdmin  = "admin"  // 可清空运费矩阵
	RoleViewer = "viewer" // 只读
)

const (
	accessSubject   = "access"
	anonymousUser   = "anonymous"
	bearerPrefix    = "Bearer "
	contextClaimKey = "admin_claims"
)

var (
	errMissingSecret = errors.New("jwt secret is empty")
	errMissingBearer = errors.New("未提供认证信息")
	errBadBearer     = errors.New("认证格式错误，应为 Bearer {token}")
)

// AdminClaims 后台令牌
type AdminClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAccessToken 签发 HS256 访问令牌，由 CLI token 命令调用
func GenerateAccessToken(cfg config.AuthConfig, username, role string) (string, error) {
	if cfg.JWTSecret == "" {
		return "", errMissingSecret
	}

	issuedAt := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   accessSubject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(cfg.TokenTTL)),
		},
	}).SignedString([]byte(cfg.JWTSecret))
}

// ParseToken 校验签名、算法、签发方和过期时间
func ParseToken(cfg config.AuthConfig, raw string) (*AdminClaims, error) {
	parser := jwt.NewParser(parserOptions(cfg)...)

	claims := new(AdminClaims)
	if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	}); err != nil {
		return nil, err
	}
	if claims.Subject != accessSubject {
		return nil, jwt.ErrTokenInvalidSubject
	}
	return claims, nil
}

func parserOptions(cfg config.AuthConfig) []jwt.ParserOption {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	return opts
}

// bearerToken 取出 Authorization 头中的令牌
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingBearer
	}
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", errBadBearer
	}
	return strings.TrimSpace(token), nil
}

// ==================== Gin 中间件 ====================

// JWTAuth 校验访问令牌，并把令牌写入 gin.Context
// 关闭鉴权时以 anonymous/admin 身份放行，只用于本地开发
func JWTAuth(cfg config.AuthConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Set(contextClaimKey, &AdminClaims{Username: anonymousUser, Role: RoleAdmin})
			c.Next()
		}
	}

	return func(c *gin.Context) {
		raw, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := ParseToken(cfg, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token 无效或已过期"})
			return
		}

		c.Set(contextClaimKey, claims)
		c.Next()
	}
}

// RequireRole 只允许指定角色访问，须放在 JWTAuth 之后
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claims := claimsFrom(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户角色"})
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "无权限访问"})
			return
		}
		c.Next()
	}
}

func claimsFrom(c *gin.Context) *AdminClaims {
	v, ok := c.Get(contextClaimKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*AdminClaims)
	return claims
}

// GetUsername 当前用户名，未认证时为空
func GetUsername(c *gin.Context) string {
	if claims := claimsFrom(c); claims != nil {
		return claims.Username
	}
	return ""
}

// GetUserRole 当前角色，未认证时为空
func GetUserRole(c *gin.Context) string {
	if claims := claimsFrom(c); claims != nil {
		return claims.Role
	}
	return ""
}
