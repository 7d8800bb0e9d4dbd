package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Indicator 상태 점(Dot)과 선택적 레이블을 렌더링하는 컴포넌트를 생성합니다.
//
// 상태 점은 주입받은 테마의 색상으로 채워진 원형 요소이며,
// role/aria-label 속성을 통해 보조 기술이 상태를 읽을 수 있도록 합니다.
// label이 비어있지 않으면 상태 점 옆에 전달받은 문자열 그대로 표시합니다.
func Indicator(status Status, theme Theme, label string) g.Node {
	visual := ResolveVisual(status, theme)

	return html.Span(
		html.Class("status-indicator"),
		html.Span(
			html.Class("status-dot"),
			html.Role("status"),
			g.Attr("aria-label", visual.AccessibleLabel),
			html.StyleAttr(fmt.Sprintf("display:inline-block;width:10px;height:10px;border-radius:50%%;background-color:%s", visual.DotColor)),
		),
		g.If(label != "",
			html.Span(
				html.Class("status-label"),
				g.Text(label),
			),
		),
	)
}
