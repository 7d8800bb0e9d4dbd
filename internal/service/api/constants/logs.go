package constants

// 내부 로깅을 위한 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "상태 서비스 시작중..."
	LogMsgServiceStarted        = "상태 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "상태 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "상태 서비스 중지중..."
	LogMsgServiceStopped        = "상태 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "상태 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "상태 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "상태 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "상태 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "상태 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다."

	// ------------------------------------------------------------------------------------------------
	// 시스템 엔드포인트
	// ------------------------------------------------------------------------------------------------

	LogMsgHealthCheck = "헬스체크 요청 처리"
	LogMsgPing        = "핑 요청 처리"
	LogMsgVersionInfo = "버전 정보 요청 처리"
	LogMsgStatusPage  = "상태 페이지 요청 처리"

	// ------------------------------------------------------------------------------------------------
	// HTTP 에러
	// ------------------------------------------------------------------------------------------------

	LogMsgHTTP4xxClientError = "HTTP 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 서버 내부 오류"
)
