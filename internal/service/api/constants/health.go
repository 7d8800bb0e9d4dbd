package constants

// 헬스체크 관련 상수입니다.
const (
	// HealthStatusHealthy 헬스체크 상태: 정상
	//
	// 핸들러가 응답을 반환할 수 있는 상태라면 프로세스는 정상이므로,
	// 헬스체크 응답의 status 필드는 항상 이 값으로 고정됩니다.
	HealthStatusHealthy = "healthy"
)
