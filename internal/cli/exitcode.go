package cli

import (
	"errors"
)

// ExitCode는 profsw의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitUnknownProfile은 등록되지 않은 프로필 요청이다.
	ExitUnknownProfile ExitCode = 2
	// ExitCallbackFail은 프로필 콜백 실패다.
	ExitCallbackFail ExitCode = 3
	// ExitListenerFail은 hook 리스너 실패다.
	ExitListenerFail ExitCode = 4
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrUnknownProfile):
		return ExitUnknownProfile
	case errors.Is(err, ErrCallback):
		return ExitCallbackFail
	case errors.Is(err, ErrListener):
		return ExitListenerFail
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
