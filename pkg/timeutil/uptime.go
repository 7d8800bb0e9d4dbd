// Package timeutil 시간 값의 표현 변환을 위한 유틸리티 함수들을 제공합니다.
package timeutil

import (
	"strconv"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// FormatUptime 초 단위 가동 시간을 사람이 읽기 쉬운 문자열로 변환합니다.
//
// 입력된 초는 정수로 절삭된 뒤 일/시/분/초로 분해되며, 값이 0인 일/시/분
// 토큰은 생략됩니다. 초 토큰은 값이 0이더라도 항상 포함됩니다.
//
// 예:
//   - 0      -> "0s"
//   - 65     -> "1m 5s"
//   - 3600   -> "1h 0s"
//   - 90061  -> "1d 1h 1m 1s"
//
// 음수 입력은 계약 범위 밖이며, 호출자는 항상 0 이상의 값을 전달해야 합니다.
func FormatUptime(seconds float64) string {
	total := int64(seconds) // 소수점 이하 절삭

	days := total / secondsPerDay
	hours := (total % secondsPerDay) / secondsPerHour
	minutes := (total % secondsPerHour) / secondsPerMinute
	secs := total % secondsPerMinute

	var tokens []string
	if days > 0 {
		tokens = append(tokens, strconv.FormatInt(days, 10)+"d")
	}
	if hours > 0 {
		tokens = append(tokens, strconv.FormatInt(hours, 10)+"h")
	}
	if minutes > 0 {
		tokens = append(tokens, strconv.FormatInt(minutes, 10)+"m")
	}

	// 초 토큰은 전체 값이 0이더라도 항상 포함한다.
	tokens = append(tokens, strconv.FormatInt(secs, 10)+"s")

	return strings.Join(tokens, " ")
}

// FormatDuration time.Duration 값을 FormatUptime 형식으로 변환합니다.
func FormatDuration(d time.Duration) string {
	return FormatUptime(d.Seconds())
}
