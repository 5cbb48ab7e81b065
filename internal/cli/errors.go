package cli

import (
	"github.com/hbjs97/profsw/internal/config"
	"github.com/hbjs97/profsw/internal/engine"
	"github.com/hbjs97/profsw/internal/hookbus"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrUnknownProfile은 등록되지 않은 프로필로 전환을 요청했을 때의 sentinel error다.
	ErrUnknownProfile = engine.ErrUnknownProfile
	// ErrCallback은 activate/deactivate 콜백 실패를 나타내는 sentinel error다.
	ErrCallback = engine.ErrCallback
	// ErrListener는 hook 리스너 실패를 나타내는 sentinel error다.
	ErrListener = hookbus.ErrListener
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
