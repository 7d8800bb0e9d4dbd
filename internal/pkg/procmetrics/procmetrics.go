// Package procmetrics 실행 중인 프로세스의 메모리 사용량 지표를 수집합니다.
//
// Provider 인터페이스를 통해 지표 수집을 추상화하여, 핸들러 등 상위 계층이
// 실제 런타임 값 대신 고정된 값을 주입받아 테스트할 수 있도록 합니다.
package procmetrics

import (
	"runtime"
	"time"
)

// Memory 프로세스의 메모리 사용량 스냅샷입니다. 모든 필드는 바이트 단위입니다.
type Memory struct {
	HeapUsed  uint64 // 현재 할당되어 사용 중인 힙 메모리
	HeapTotal uint64 // 런타임이 OS로부터 확보한 힙 메모리
	RSS       uint64 // 프로세스가 OS로부터 확보한 전체 메모리
}

// Provider 프로세스 지표 수집을 추상화하는 인터페이스입니다.
type Provider interface {
	// MemoryUsage 현재 프로세스의 메모리 사용량을 반환합니다.
	MemoryUsage() Memory

	// Uptime 프로세스 시작 이후 경과 시간을 반환합니다.
	Uptime() time.Duration
}

// runtimeProvider runtime 패키지를 사용하는 기본 Provider 구현체입니다.
type runtimeProvider struct {
	startTime time.Time
}

// NewRuntimeProvider Go 런타임에서 지표를 수집하는 Provider를 생성합니다.
// 가동 시간은 이 함수가 호출된 시점을 기준으로 측정됩니다.
func NewRuntimeProvider() Provider {
	return &runtimeProvider{
		startTime: time.Now(),
	}
}

func (p *runtimeProvider) MemoryUsage() Memory {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return Memory{
		HeapUsed:  ms.HeapAlloc,
		HeapTotal: ms.HeapSys,
		RSS:       ms.Sys,
	}
}

func (p *runtimeProvider) Uptime() time.Duration {
	return time.Since(p.startTime)
}

// ToMB 바이트 값을 가장 가까운 메가바이트 정수로 반올림하여 반환합니다.
func ToMB(bytes uint64) uint64 {
	const mb = 1024 * 1024
	return (bytes + mb/2) / mb
}
