package log

const (
	KeyAppName          = "app"
	KeyCartItemCount    = "cartItemCount"
	KeyCartTotal        = "cartTotal"
	KeyConfig           = "config"
	KeyEmail            = "email"
	KeyNotificationID   = "notificationId"
	KeyNotificationKind = "notificationKind"
	KeyProcess          = "process"
	KeyProductID        = "productId"
	KeyProductName      = "productName"
	KeyQuantity         = "quantity"
	KeyRequestBody      = "requestBody"
	KeyRequestHeader    = "requestHeader"
	KeyRequestHost      = "host"
	KeyRequestID        = "requestId"
	KeyRequestIp        = "requesterIP"
	KeyRequestMethod    = "requestMethod"
	KeyRequestURI       = "requestURI"
	KeyRequestURL       = "requestURL"
	KeySessionID        = "sessionId"
	KeyTag              = "tag"
	KeyToken            = "token"
	KeyUserID           = "userId"
)
