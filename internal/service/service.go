// Package service 애플리케이션을 구성하는 서비스들의 공통 실행 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 독립적으로 기동/종료되는 서비스의 생명주기를 정의하는 인터페이스입니다.
//
// 서비스는 Start 호출 시 자신의 작업 고루틴을 기동하고, serviceStopCtx가
// 취소되면 정리 작업을 수행한 뒤 serviceStopWG.Done()을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
