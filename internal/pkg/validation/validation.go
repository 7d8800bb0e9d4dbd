// Package validation 설정값 검증을 위한 도메인 규칙들을 제공합니다.
package validation

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/status-server/internal/pkg/errors"
	applog "github.com/darkkaiser/status-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

// ValidateFileExists 파일 존재 여부를 검사합니다.
// warnOnly가 true면 경고만 출력하고 에러는 반환하지 않습니다.
func ValidateFileExists(path string, warnOnly bool) error {
	if path == "" {
		return nil // 빈 경로는 검사하지 않음
	}

	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			errMsg := apperrors.New(apperrors.NotFound, fmt.Sprintf("파일이 존재하지 않습니다: %s", path))
			if warnOnly {
				applog.WithComponentAndFields("validation", log.Fields{
					"file_path": path,
				}).Warn(errMsg.Error())
				return nil
			}
			return errMsg
		}
		return apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("파일 접근 오류: %s", path))
	}
	return nil
}

// ValidateCORSOrigin CORS Origin 문자열이 'Scheme://Host[:Port]' 형식인지 검증합니다.
//
// 와일드카드("*")는 이 함수의 검증 대상이 아니며, 호출자가 별도로 처리해야 합니다.
// 경로, 쿼리, 프래그먼트가 포함된 Origin은 유효하지 않은 것으로 판단합니다.
func ValidateCORSOrigin(origin string) error {
	if strings.TrimSpace(origin) == "" {
		return apperrors.New(apperrors.InvalidInput, "CORS Origin이 비어있습니다")
	}

	u, err := url.Parse(origin)
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("CORS Origin을 해석할 수 없습니다: '%s'", origin))
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin의 스킴은 http 또는 https여야 합니다: '%s'", origin))
	}
	if u.Host == "" {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin에 호스트가 없습니다: '%s'", origin))
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin에는 경로를 포함할 수 없습니다: '%s'", origin))
	}

	return nil
}
