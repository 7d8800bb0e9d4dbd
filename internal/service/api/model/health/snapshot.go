// Package health 헬스체크 API의 응답 모델을 정의합니다.
package health

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/darkkaiser/status-server/internal/pkg/errors"
)

// MegaBytes 메가바이트 단위의 메모리 크기입니다.
//
// JSON 직렬화 시 "42MB"와 같이 MB 접미사가 붙은 문자열로 표현됩니다.
type MegaBytes uint64

// MarshalJSON json.Marshaler 인터페이스를 구현합니다.
func (m MegaBytes) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%dMB"`, uint64(m))), nil
}

// UnmarshalJSON json.Unmarshaler 인터페이스를 구현합니다.
func (m *MegaBytes) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	s = strings.TrimSuffix(s, "MB")

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ParsingFailed, "메모리 크기 값을 해석할 수 없습니다: '%s'", string(data))
	}

	*m = MegaBytes(v)
	return nil
}

// Snapshot 서버 헬스체크 응답
//
// 요청 시점마다 새로 생성되는 일회성 스냅샷이며, 어디에도 저장되지 않습니다.
type Snapshot struct {
	// 헬스체크 상태 (항상 "healthy")
	Status string `json:"status" example:"healthy"`
	// 스냅샷 생성 시각 (ISO-8601)
	Timestamp string `json:"timestamp" example:"2025-01-01T00:00:00Z"`
	// 서버 가동 시간(초)
	UptimeSeconds int64 `json:"uptimeSeconds" example:"3600"`
	// 사람이 읽기 쉬운 가동 시간 (예: "1h 0s")
	UptimeFormatted string `json:"uptimeFormatted" example:"1h 0s"`
	// 사용 중인 힙 메모리
	HeapUsedMB MegaBytes `json:"heapUsedMB" example:"42MB" swaggertype:"string"`
	// 확보된 힙 메모리
	HeapTotalMB MegaBytes `json:"heapTotalMB" example:"64MB" swaggertype:"string"`
	// 프로세스 전체 메모리
	RSSMB MegaBytes `json:"rssMB" example:"80MB" swaggertype:"string"`
	// 애플리케이션 버전
	Version string `json:"version" example:"v1.0.0"`
}

// PingReply 헬스체크 핑 응답
type PingReply struct {
	// 항상 true
	Pong bool `json:"pong" example:"true"`
	// 응답 시각 (Unix epoch 밀리초)
	TimestampMillis int64 `json:"timestampMillis" example:"1735689600000"`
}
