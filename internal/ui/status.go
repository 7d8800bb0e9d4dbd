// Package ui 서비스 상태를 표현하는 시각 컴포넌트를 제공합니다.
package ui

import (
	"github.com/iancoleman/strcase"
)

// Status 서비스의 동작 상태를 나타내는 열거형입니다.
type Status string

// 상태 값 상수
const (
	// StatusActive 서비스가 정상 동작 중
	StatusActive Status = "active"

	// StatusInactive 서비스가 중지됨
	StatusInactive Status = "inactive"

	// StatusWarning 서비스가 동작 중이나 주의가 필요함
	StatusWarning Status = "warning"
)

// Valid 정의된 상태 값인지 확인합니다.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusWarning:
		return true
	}
	return false
}

// DisplayLabel 상태 값의 표시용 레이블을 반환합니다. (예: "active" -> "Active")
func (s Status) DisplayLabel() string {
	return strcase.ToCamel(string(s))
}

func (s Status) String() string {
	return string(s)
}
