package api

import (
	apperrors "github.com/darkkaiser/status-server/internal/pkg/errors"
)

var (
	// ErrMetricsProviderNotInitialized 서비스 시작 시 핵심 의존성 객체인 프로세스 메트릭 Provider가 올바르게 초기화되지 않았을 때 반환하는 에러입니다.
	ErrMetricsProviderNotInitialized = apperrors.New(apperrors.Internal, "procmetrics.Provider 객체가 초기화되지 않았습니다")
)
