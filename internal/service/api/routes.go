package api

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/darkkaiser/status-server/internal/service/api/handler/statuspage"
	"github.com/darkkaiser/status-server/internal/service/api/handler/system"
)

// SetupRoutes API 서비스의 전역 라우트를 등록합니다.
//
// 이 함수는 다음과 같은 엔드포인트들을 설정합니다:
//   - 시스템 엔드포인트: 헬스체크(/api/health, /api/health/ping) 및 버전 정보(/api/version)
//   - 상태 페이지: 서버 상태 HTML 페이지(/status)
//   - API 문서: Swagger UI (/swagger/*) 제공
func SetupRoutes(e *echo.Echo, systemHandler *system.Handler, statusPageHandler *statuspage.Handler) {
	registerSystemRoutes(e, systemHandler)
	registerStatusPageRoutes(e, statusPageHandler)
	registerSwaggerRoutes(e)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/api/health", h.HealthSnapshotHandler)
	e.GET("/api/health/ping", h.PingHandler)
	e.GET("/api/version", h.VersionHandler)
}

func registerStatusPageRoutes(e *echo.Echo, h *statuspage.Handler) {
	e.GET("/status", h.StatusPageHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	// Swagger UI 엔드포인트 설정
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		// Swagger 문서 JSON 파일 위치 지정
		echoSwagger.URL("/swagger/doc.json"),
		// 딥 링크 활성화 (특정 API로 바로 이동 가능한 URL 지원)
		echoSwagger.DeepLinking(true),
		// 문서 로드 시 태그(Tag) 목록만 펼침 상태로 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}
