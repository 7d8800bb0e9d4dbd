package main

import (
	"context"
	"runtime"

	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/status-server/internal/config"
	"github.com/darkkaiser/status-server/internal/pkg/procmetrics"
	"github.com/darkkaiser/status-server/internal/pkg/version"
	"github.com/darkkaiser/status-server/internal/service"
	"github.com/darkkaiser/status-server/internal/service/api"
	applog "github.com/darkkaiser/status-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title Status Server API
// @version 1.0.0
// @description 서버 프로세스의 상태를 제공하는 REST API입니다.
// @description
// @description 이 API를 사용하면 모니터링 시스템에서 서버의 헬스체크, 가동 시간,
// @description 메모리 사용량, 버전 정보를 조회할 수 있습니다.
// @description
// @description ## 주요 기능
// @description - 헬스체크 스냅샷 조회 (가동 시간, 힙/RSS 메모리 사용량)
// @description - 핑 응답 (서버 응답 가능 여부 확인)
// @description - 버전 정보 조회 (버전, 빌드 날짜, 빌드 번호, Go 버전)
// @description - 서버 상태 HTML 페이지 (/status)
// @description
// @description 모든 엔드포인트는 인증 없이 호출 가능합니다.

// @termsOfService http://swagger.io/terms/

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT
// @license.url https://github.com/DarkKaiser/status-server/blob/master/LICENSE

// @host localhost:8080
// @BasePath /

// 빌드 정보 변수 (Dockerfile의 ldflags로 주입됨)
var (
	Version     = "dev"     // Git 커밋 해시
	BuildDate   = "unknown" // 빌드 날짜
	BuildNumber = "0"       // 빌드 번호
)

const (
	banner = `
  ____   _          _                  ____
 / ___| | |_  __ _ | |_  _   _  ___   / ___|   ___  _ __ __   __  ___  _ __
 \___ \ | __|/ _` + "`" + ` || __|| | | |/ __|  \___ \  / _ \| '__|\ \ / / / _ \| '__|
  ___) || |_| (_| || |_ | |_| |\__ \   ___) ||  __/| |    \ V / |  __/| |
 |____/  \__|\__,_| \__| \__,_||___/  |____/  \___||_|     \_/   \___||_|
                                                             %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentConfig(config.AppName)
	} else {
		logOpts = applog.NewProductionConfig(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, Version)

	// 빌드 정보 설정 (전역 싱글톤 등록)
	buildInfo := version.Info{
		Version:     Version,
		BuildDate:   BuildDate,
		BuildNumber: BuildNumber,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	}
	version.Set(buildInfo)

	// 빌드 정보 출력
	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 권장 설정 준수 여부 진단 (경고만 출력하고 서버 구동은 계속한다)
	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 서비스를 생성하고 초기화한다.
	metricsProvider := procmetrics.NewRuntimeProvider()
	apiService := api.NewService(appConfig, metricsProvider, buildInfo)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	// Handle sigterm and await termC signal
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC // Blocks here until interrupted

	// Handle shutdown
	applog.WithComponent("main").Info("Shutdown signal received")
	cancel()             // Signal cancellation to context.Context
	serviceStopWG.Wait() // Block here until are workers are done
}
