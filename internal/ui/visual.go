package ui

import "fmt"

// Visual 상태 값으로부터 도출된 시각 표현입니다.
type Visual struct {
	DotColor        string // 상태 점(Dot)의 채움 색상
	AccessibleLabel string // 보조 기술(스크린 리더)용 상태 레이블
}

// ResolveVisual 상태 값을 시각 표현으로 변환합니다.
//
// 이 매핑은 정의된 모든 상태 값에 대해 전체 함수(Total Function)여야 하며,
// 매핑되지 않은 상태 값은 프로그래밍 오류이므로 panic을 발생시킵니다.
func ResolveVisual(status Status, theme Theme) Visual {
	var color string
	switch status {
	case StatusActive:
		color = theme.Green
	case StatusInactive:
		color = theme.Red
	case StatusWarning:
		color = theme.Amber
	default:
		panic(fmt.Sprintf("ui: 정의되지 않은 상태 값입니다: %q", status))
	}

	return Visual{
		DotColor:        color,
		AccessibleLabel: status.DisplayLabel(),
	}
}
