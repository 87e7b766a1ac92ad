package response

// 对外文案集中管理（状态码与文案都是接口契约的一部分）
const (
	MsgRegistered   = "User registered successfully"
	MsgLoginOK      = "Login successful"
	MsgUpdated      = "User updated successfully"
	MsgDeleted      = "User deleted successfully"
	MsgNoInput      = "No input data provided"
	MsgBadEmail     = "Invalid email format"
	MsgUnauthorized = "Unauthorized"
	MsgRouteMissing = "Resource not found"
	MsgInternal     = "Internal server error"
)
