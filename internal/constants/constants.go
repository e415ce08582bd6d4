package constants

import "time"

const (
	//分頁
	DefaultPagingSize int = 20
	DefaultPaging     int = 1
)

type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationClaimsKey  ContextKey = "authorization_claims"
	CurrentUserKey          ContextKey = "current_user"
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)

const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
	RoleBuyer  = "buyer"
)

// IsValidRole 回報 role 是否為系統認可的角色
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSeller, RoleBuyer:
		return true
	default:
		return false
	}
}

const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusDeleted  = "deleted"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

const (
	OrderNumberPrefix = "ORD"

	ProductCacheKeyPrefix  = "shopcenter:product"
	DefaultProductCacheTTL = 30 * time.Second

	EventPublishTimeout = 5 * time.Second
)
