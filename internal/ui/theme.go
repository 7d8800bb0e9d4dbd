package ui

// Theme 상태 표시에 사용되는 색상 팔레트입니다.
//
// 컴포넌트에 직접 색상을 하드코딩하지 않고 테마를 주입받도록 하여,
// 팔레트 교체 시 단일 지점만 수정하면 되도록 합니다.
type Theme struct {
	Green string // 정상 상태 색상
	Red   string // 중지 상태 색상
	Amber string // 경고 상태 색상
}

// AccessibleTheme 명도 대비가 보장되는 접근성 색상 팔레트를 반환합니다.
func AccessibleTheme() Theme {
	return Theme{
		Green: "#1a7f37",
		Red:   "#cf222e",
		Amber: "#9a6700",
	}
}
