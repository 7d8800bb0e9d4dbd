// Package statuspage 서버 상태를 보여주는 HTML 페이지 핸들러를 제공합니다.
//
// 브라우저에서 바로 확인할 수 있는 서버 렌더링 페이지로,
// 모니터링 시스템 없이도 서버의 동작 상태를 눈으로 확인할 수 있습니다.
package statuspage

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/darkkaiser/status-server/internal/pkg/procmetrics"
	"github.com/darkkaiser/status-server/internal/pkg/version"
	"github.com/darkkaiser/status-server/internal/service/api/constants"
	"github.com/darkkaiser/status-server/internal/ui"
	applog "github.com/darkkaiser/status-server/pkg/log"
	"github.com/darkkaiser/status-server/pkg/timeutil"
)

// Handler 상태 페이지 핸들러
type Handler struct {
	metricsProvider procmetrics.Provider

	buildInfo version.Info

	theme ui.Theme

	debug bool
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(metricsProvider procmetrics.Provider, buildInfo version.Info, theme ui.Theme, debug bool) *Handler {
	if metricsProvider == nil {
		panic(constants.PanicMsgMetricsProviderRequired)
	}

	return &Handler{
		metricsProvider: metricsProvider,

		buildInfo: buildInfo,

		theme: theme,

		debug: debug,
	}
}

// StatusPageHandler godoc
// @Summary 서버 상태 페이지
// @Description 서버의 동작 상태를 HTML 페이지로 렌더링하여 반환합니다.
// @Tags System
// @Produce html
// @Success 200 {string} string "상태 페이지 HTML"
// @Router /status [get]
func (h *Handler) StatusPageHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/status",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgStatusPage)

	uptime := h.metricsProvider.Uptime()
	mem := h.metricsProvider.MemoryUsage()

	// 이 페이지가 렌더링되고 있다는 것 자체가 HTTP 서버가 동작 중이라는 의미입니다.
	serverStatus := ui.StatusActive

	// 디버그 모드는 운영 환경에서 켜져 있으면 안되므로 경고로 표시합니다.
	debugStatus := ui.StatusInactive
	if h.debug {
		debugStatus = ui.StatusWarning
	}

	page := html.Doctype(
		html.HTML(
			html.Lang("ko"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.TitleEl(g.Text("status-server")),
			),
			html.Body(
				html.H1(g.Text("status-server")),
				html.Div(
					html.Class("status-list"),
					h.statusRow(serverStatus, "HTTP 서버"),
					h.statusRow(debugStatus, "디버그 모드"),
				),
				html.Dl(
					html.Class("status-details"),
					html.Dt(g.Text("가동 시간")),
					html.Dd(html.Class("uptime"), g.Text(timeutil.FormatDuration(uptime))),
					html.Dt(g.Text("힙 메모리")),
					html.Dd(html.Class("heap"), g.Text(fmt.Sprintf("%dMB / %dMB",
						procmetrics.ToMB(mem.HeapUsed), procmetrics.ToMB(mem.HeapTotal)))),
					html.Dt(g.Text("전체 메모리")),
					html.Dd(html.Class("rss"), g.Text(fmt.Sprintf("%dMB", procmetrics.ToMB(mem.RSS)))),
					html.Dt(g.Text("버전")),
					html.Dd(html.Class("version"), g.Text(h.buildInfo.Version)),
				),
			),
		),
	)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)

	return page.Render(c.Response())
}

// statusRow 상태 표시 컴포넌트를 담은 행(Row)을 생성합니다.
func (h *Handler) statusRow(status ui.Status, label string) g.Node {
	return html.Div(
		html.Class("status-row"),
		ui.Indicator(status, h.theme, label),
	)
}
