package errors

//go:generate stringer -type=ErrorType

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 네트워크 등)
	System

	// InvalidInput 잘못된 입력값 (유효성 검사 실패)
	InvalidInput

	// ParsingFailed 데이터 파싱 또는 형식 변환 실패
	ParsingFailed

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 서비스 일시적 사용 불가
	Unavailable
)
