package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/profsw/internal/cmdexec"
	"github.com/hbjs97/profsw/internal/config"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckConfig는 설정 파일이 존재하고 파싱되는지 확인한다.
// 파싱에 성공하면 Config도 함께 반환한다.
func CheckConfig(cfgPath string) (DiagResult, *config.Config) {
	if _, err := os.Stat(cfgPath); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: fmt.Sprintf("설정 파일 없음: %s", cfgPath),
			Fix:     "profsw setup 실행",
		}, nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: fmt.Sprintf("설정 파일 파싱 실패: %v", err),
			Fix:     fmt.Sprintf("%s 내용을 확인하세요", cfgPath),
		}, nil
	}
	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: fmt.Sprintf("컨텍스트 %d개 정의됨", len(cfg.Contexts)),
	}, cfg
}

// CheckPermissions는 설정 파일 권한이 0600인지 확인한다.
func CheckPermissions(cfgPath string) DiagResult {
	if err := config.ValidateFilePermissions(cfgPath); err != nil {
		return DiagResult{
			Name:    "permissions",
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("chmod 600 %s", cfgPath),
		}
	}
	return DiagResult{
		Name:    "permissions",
		Status:  StatusOK,
		Message: "파일 권한 0600",
	}
}

// CheckShell은 콜백 인터프리터가 실행 가능한지 확인한다.
func CheckShell(ctx context.Context, cmd cmdexec.Commander, shell string) DiagResult {
	out, err := cmd.Run(ctx, shell, "-c", "true")
	if err != nil {
		return DiagResult{
			Name:    "shell",
			Status:  StatusFail,
			Message: fmt.Sprintf("인터프리터 %s 실행 실패: %s", shell, strings.TrimSpace(string(out))),
			Fix:     "설정의 shell 값을 확인하세요",
		}
	}
	return DiagResult{
		Name:    "shell",
		Status:  StatusOK,
		Message: fmt.Sprintf("인터프리터 %s 사용 가능", shell),
	}
}

// CheckDefaultContext는 default_context가 비어 있지 않은지 확인한다.
// 비어 있으면 모든 명령에 --context가 필요하므로 경고한다.
func CheckDefaultContext(cfg *config.Config) DiagResult {
	if cfg.DefaultContext == "" {
		return DiagResult{
			Name:    "default_context",
			Status:  StatusWarn,
			Message: "default_context 미설정 — 매번 --context 플래그가 필요합니다",
			Fix:     "설정에 default_context를 지정하세요",
		}
	}
	return DiagResult{
		Name:    "default_context",
		Status:  StatusOK,
		Message: fmt.Sprintf("기본 컨텍스트: %s", cfg.DefaultContext),
	}
}

// CheckActiveEnv는 셸 환경에 기록된 활성 프로필이 설정과 일치하는지 확인한다.
func CheckActiveEnv(cfg *config.Config) DiagResult {
	ctxName := os.Getenv("PROFSW_CONTEXT")
	profileName := os.Getenv("PROFSW_PROFILE")
	if ctxName == "" && profileName == "" {
		return DiagResult{
			Name:    "active_env",
			Status:  StatusOK,
			Message: "활성 프로필 없음",
		}
	}
	if _, err := cfg.GetProfile(ctxName, profileName); err != nil {
		return DiagResult{
			Name:    "active_env",
			Status:  StatusWarn,
			Message: fmt.Sprintf("환경의 활성 프로필 %s/%s가 설정에 없습니다", ctxName, profileName),
			Fix:     "profsw switch로 다시 전환하거나 PROFSW_* 변수를 unset 하세요",
		}
	}
	return DiagResult{
		Name:    "active_env",
		Status:  StatusOK,
		Message: fmt.Sprintf("활성 프로필: %s/%s", ctxName, profileName),
	}
}

// RunAll은 모든 진단을 실행한다. 설정 파싱에 실패하면 설정 의존 진단은 생략된다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfgPath string) []DiagResult {
	var results []DiagResult

	cfgResult, cfg := CheckConfig(cfgPath)
	results = append(results, cfgResult)
	if cfg == nil {
		return results
	}

	results = append(results, CheckPermissions(cfgPath))
	results = append(results, CheckShell(ctx, cmd, cfg.Shell))
	results = append(results, CheckDefaultContext(cfg))
	results = append(results, CheckActiveEnv(cfg))
	return results
}
