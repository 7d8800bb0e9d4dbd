// Package log 애플리케이션 전역 로깅 시스템을 제공합니다.
//
// sirupsen/logrus를 기반으로 다음 기능을 확장합니다:
//   - 로그 레벨별 파일 분리 (Main / Critical / Verbose)
//   - lumberjack을 이용한 로그 파일 로테이션
//   - component 필드를 통한 로그 발생 위치의 일관된 식별
package log

import (
	log "github.com/sirupsen/logrus"
)

// SetDebugMode Debug 모드에 따라 로그 레벨을 설정합니다.
//   - Debug 모드: Trace 레벨 (모든 로그 출력)
//   - 운영 모드: Info 레벨 (Info, Warn, Error, Fatal만 출력)
func SetDebugMode(debug bool) {
	if debug {
		log.SetLevel(log.TraceLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// StandardLogger 전역 logrus Logger 인스턴스를 반환합니다.
func StandardLogger() *Logger {
	return log.StandardLogger()
}

// WithFields 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return log.WithFields(fields)
}

// WithError error 필드를 포함한 로그 Entry를 반환합니다.
func WithError(err error) *Entry {
	return log.WithError(err)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
// 모든 로그에 component 필드를 일관되게 추가하기 위해 사용합니다.
func WithComponent(component string) *Entry {
	return log.WithFields(log.Fields{
		"component": component,
	})
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(log.Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return log.WithFields(newFields)
}
