// Package api はHTTPレスポンスのワイヤ型を定義します。
package api

// FieldError はバリデーション違反1件を表します。
// Field はリクエストJSONのフィールド名、Message は違反したルールのメッセージです。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse はエラーレスポンスの統一フォーマットです。
// バリデーションエラーの場合のみ Details にフィールド単位の詳細が入ります。
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// MessageResponse は単純な確認メッセージのレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse は死活監視エンドポイントのレスポンスです。
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewValidationError はフィールド詳細付きの400レスポンスボディを生成します。
func NewValidationError(details []FieldError) ErrorResponse {
	return ErrorResponse{
		Error:   "Validation Error",
		Message: "Invalid input data",
		Details: details,
	}
}

// NewNotFound は404レスポンスボディを生成します。
func NewNotFound(message string) ErrorResponse {
	return ErrorResponse{Error: "Not Found", Message: message}
}

// NewConflict は409レスポンスボディを生成します。
func NewConflict(message string) ErrorResponse {
	return ErrorResponse{Error: "Conflict", Message: message}
}

// NewInternalError はストア障害など未分類エラーの500レスポンスボディを生成します。
func NewInternalError() ErrorResponse {
	return ErrorResponse{Error: "Internal Server Error", Message: "Something went wrong"}
}
