package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	// 별도의 타임아웃 설정이 없는 경우 이 값이 적용되며, 요청 처리가 이 시간을 초과하면
	// 자동으로 취소되어 서버 리소스를 보호합니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultReadTimeout 요청 전체(헤더+본문) 읽기 최대 대기 시간 (30초)
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout 응답 쓰기 최대 대기 시간 (30초)
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 유휴 상태 최대 유지 시간 (120초)
	DefaultIdleTimeout = 120 * time.Second

	// DefaultRateLimitPerSecond IP당 초당 허용 요청 수 기본값
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP당 순간 허용 요청 수(버스트) 기본값
	DefaultRateLimitBurst = 40
)
