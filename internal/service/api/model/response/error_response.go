// Package response API 공통 응답 모델을 정의합니다.
package response

// ErrorResponse API 오류 응답
type ErrorResponse struct {
	// ResultCode HTTP 상태 코드 (예: 400, 404, 500)
	ResultCode int `json:"result_code" example:"400"`

	// Message 에러 메시지
	Message string `json:"message" example:"잘못된 요청입니다"`
}
