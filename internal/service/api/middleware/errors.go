package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/darkkaiser/status-server/internal/pkg/errors"
	"github.com/darkkaiser/status-server/internal/service/api/constants"
	"github.com/darkkaiser/status-server/internal/service/api/httputil"
)

var (
	// ErrBodyTooLarge 요청 본문의 크기가 서버 허용 한도(BodyLimit)를 초과했을 때 반환하는 표준 413 에러입니다.
	ErrBodyTooLarge = echo.NewHTTPError(http.StatusRequestEntityTooLarge, constants.ErrMsgRequestEntityTooLarge)

	// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환할 표준 HTTP 429(Too Many Requests) 에러입니다.
	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
)

// NewErrPanicRecovered 캡처된 패닉 값을 내부 시스템 오류로 래핑하여 새로운 에러를 생성합니다.
func NewErrPanicRecovered(r any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}
