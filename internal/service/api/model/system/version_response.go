// Package system 시스템 엔드포인트의 응답 모델을 정의합니다.
package system

// VersionResponse 서버 버전 정보 응답
type VersionResponse struct {
	// 애플리케이션 버전
	Version string `json:"version" example:"v1.0.0"`
	// 빌드 날짜
	BuildDate string `json:"build_date" example:"2025-12-05T11:30:00Z"`
	// CI/CD 빌드 번호
	BuildNumber string `json:"build_number" example:"456"`
	// 빌드에 사용된 Go 버전
	GoVersion string `json:"go_version" example:"go1.24.0"`
}
