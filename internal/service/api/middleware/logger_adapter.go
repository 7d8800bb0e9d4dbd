package middleware

import (
	"encoding/json"
	"io"

	"github.com/labstack/gommon/log"

	applog "github.com/darkkaiser/status-server/pkg/log"
)

// Logger Echo 프레임워크의 로거 인터페이스를 애플리케이션 로거로 연결하는 어댑터입니다.
//
// Echo는 내부적으로 gommon/log.Logger 인터페이스를 사용하므로,
// 이 어댑터를 통해 Echo의 내부 로그가 애플리케이션의 구조화된 로그로 통합됩니다.
//
// 사용 예시:
//
//	e := echo.New()
//	e.Logger = middleware.Logger{Logger: applog.StandardLogger()}
type Logger struct {
	*applog.Logger
}

// Output 로거의 출력 대상을 반환합니다.
func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

// Prefix 로그 프리픽스를 반환합니다. 구조화된 로그에서는 사용하지 않습니다.
func (l Logger) Prefix() string {
	return ""
}

// SetPrefix 로그 프리픽스를 설정합니다. 구조화된 로그에서는 사용하지 않습니다.
func (l Logger) SetPrefix(p string) {}

// Level 현재 로그 레벨을 Echo의 로그 레벨로 변환하여 반환합니다.
func (l Logger) Level() log.Lvl {
	switch l.Logger.GetLevel() {
	case applog.TraceLevel, applog.DebugLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	default:
		return log.OFF
	}
}

// SetLevel Echo의 로그 레벨을 애플리케이션 로그 레벨로 변환하여 설정합니다.
func (l Logger) SetLevel(v log.Lvl) {
	switch v {
	case log.DEBUG:
		l.Logger.SetLevel(applog.DebugLevel)
	case log.INFO:
		l.Logger.SetLevel(applog.InfoLevel)
	case log.WARN:
		l.Logger.SetLevel(applog.WarnLevel)
	case log.ERROR:
		l.Logger.SetLevel(applog.ErrorLevel)
	case log.OFF:
		l.Logger.SetLevel(applog.PanicLevel)
	}
}

// SetHeader 로그 헤더 형식을 설정합니다. 구조화된 로그에서는 사용하지 않습니다.
func (l Logger) SetHeader(h string) {}

// Printj JSON 형식의 로그를 출력합니다.
func (l Logger) Printj(j log.JSON) {
	l.Logger.Print(l.jsonString(j))
}

// Debugj JSON 형식의 디버그 레벨 로그를 출력합니다.
func (l Logger) Debugj(j log.JSON) {
	l.Logger.Debug(l.jsonString(j))
}

// Infoj JSON 형식의 정보 레벨 로그를 출력합니다.
func (l Logger) Infoj(j log.JSON) {
	l.Logger.Info(l.jsonString(j))
}

// Warnj JSON 형식의 경고 레벨 로그를 출력합니다.
func (l Logger) Warnj(j log.JSON) {
	l.Logger.Warn(l.jsonString(j))
}

// Errorj JSON 형식의 에러 레벨 로그를 출력합니다.
func (l Logger) Errorj(j log.JSON) {
	l.Logger.Error(l.jsonString(j))
}

// Fatalj JSON 형식의 치명적 에러 로그를 출력하고 프로세스를 종료합니다.
func (l Logger) Fatalj(j log.JSON) {
	l.Logger.Fatal(l.jsonString(j))
}

// Panicj JSON 형식의 패닉 로그를 출력하고 panic을 발생시킵니다.
func (l Logger) Panicj(j log.JSON) {
	l.Logger.Panic(l.jsonString(j))
}

// jsonString JSON 객체를 문자열로 변환합니다. 변환 실패 시 빈 문자열을 반환합니다.
func (l Logger) jsonString(j log.JSON) string {
	b, err := json.Marshal(j)
	if err != nil {
		return ""
	}
	return string(b)
}
