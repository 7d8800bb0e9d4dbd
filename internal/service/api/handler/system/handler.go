// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 핑, 버전 정보 등 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/status-server/internal/pkg/procmetrics"
	"github.com/darkkaiser/status-server/internal/pkg/version"
	"github.com/darkkaiser/status-server/internal/service/api/constants"
	"github.com/darkkaiser/status-server/internal/service/api/model/health"
	"github.com/darkkaiser/status-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/status-server/pkg/log"
	"github.com/darkkaiser/status-server/pkg/timeutil"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 핑, 버전 정보)
type Handler struct {
	metricsProvider procmetrics.Provider

	buildInfo version.Info
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(metricsProvider procmetrics.Provider, buildInfo version.Info) *Handler {
	if metricsProvider == nil {
		panic(constants.PanicMsgMetricsProviderRequired)
	}

	return &Handler{
		metricsProvider: metricsProvider,

		buildInfo: buildInfo,
	}
}

// HealthSnapshotHandler godoc
// @Summary 서버 헬스체크
// @Description 서버 프로세스의 상태 스냅샷을 반환합니다.
// @Description 인증 없이 호출 가능하며, 모니터링 시스템에서 사용됩니다.
// @Description
// @Description 응답 필드:
// @Description - status: 서버 상태 (응답이 생성되었다면 항상 healthy)
// @Description - uptimeSeconds/uptimeFormatted: 서버 가동 시간
// @Description - heapUsedMB/heapTotalMB/rssMB: 메모리 사용량 ("42MB" 형식)
// @Tags System
// @Produce json
// @Success 200 {object} health.Snapshot "헬스체크 스냅샷"
// @Router /api/health [get]
func (h *Handler) HealthSnapshotHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/api/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	uptime := h.metricsProvider.Uptime()
	mem := h.metricsProvider.MemoryUsage()

	uptimeSeconds := int64(uptime.Seconds())

	return c.JSON(http.StatusOK, health.Snapshot{
		Status:          constants.HealthStatusHealthy,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:   uptimeSeconds,
		UptimeFormatted: timeutil.FormatUptime(float64(uptimeSeconds)),
		HeapUsedMB:      health.MegaBytes(procmetrics.ToMB(mem.HeapUsed)),
		HeapTotalMB:     health.MegaBytes(procmetrics.ToMB(mem.HeapTotal)),
		RSSMB:           health.MegaBytes(procmetrics.ToMB(mem.RSS)),
		Version:         h.buildInfo.Version,
	})
}

// PingHandler godoc
// @Summary 서버 핑
// @Description 서버의 응답 가능 여부만 확인하는 최소한의 엔드포인트입니다.
// @Tags System
// @Produce json
// @Success 200 {object} health.PingReply "핑 응답"
// @Router /api/health/ping [get]
func (h *Handler) PingHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/api/health/ping",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgPing)

	return c.JSON(http.StatusOK, health.PingReply{
		Pong:            true,
		TimestampMillis: time.Now().UnixMilli(),
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Description 디버깅 및 배포 버전 확인에 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /api/version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/api/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}
