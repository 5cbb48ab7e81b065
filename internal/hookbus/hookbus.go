// Package hookbus는 프로필 전환 생명주기 단계의 publish/subscribe 버스다.
// 리스너는 등록 순서대로 동기 호출되며, 실패 시 해당 publish는 그 지점에서 중단된다.
package hookbus

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Stage는 전환 과정의 고정된 생명주기 단계다.
type Stage string

const (
	// StageBeforeSwitch는 전환 시퀀스 시작 직후 발행된다.
	StageBeforeSwitch Stage = "before-switch"
	// StageBeforeDeactivate는 이전 프로필의 deactivate 콜백 직전에 발행된다.
	StageBeforeDeactivate Stage = "before-deactivate"
	// StageAfterDeactivate는 deactivate 커밋 직후 발행된다.
	StageAfterDeactivate Stage = "after-deactivate"
	// StageBeforeActivate는 새 프로필의 activate 콜백 직전에 발행된다.
	StageBeforeActivate Stage = "before-activate"
	// StageAfterActivate는 activate 커밋 직후 발행된다.
	StageAfterActivate Stage = "after-activate"
	// StageAfterSwitch는 전환 시퀀스 완료 시 발행된다.
	StageAfterSwitch Stage = "after-switch"
)

// ErrListener는 hook 리스너가 에러를 반환할 때 래핑되는 sentinel error다.
var ErrListener = errors.New("hook 리스너 실행 실패")

// ErrUnknownStage는 정의되지 않은 단계 이름이 주어졌을 때 반환된다.
var ErrUnknownStage = errors.New("알 수 없는 hook 단계")

// Stages는 여섯 단계를 발행 순서대로 반환한다.
func Stages() []Stage {
	return []Stage{
		StageBeforeSwitch,
		StageBeforeDeactivate,
		StageAfterDeactivate,
		StageBeforeActivate,
		StageAfterActivate,
		StageAfterSwitch,
	}
}

// ValidStage는 s가 정의된 단계인지 보고한다.
func ValidStage(s Stage) bool {
	switch s {
	case StageBeforeSwitch, StageBeforeDeactivate, StageAfterDeactivate,
		StageBeforeActivate, StageAfterActivate, StageAfterSwitch:
		return true
	}
	return false
}

// Transition은 하나의 전환 작업 동안 리스너에게 보이는 상태 스냅샷이다.
// 빈 문자열은 "프로필 없음"을 뜻한다.
type Transition struct {
	// Context는 전환이 일어나는 컨텍스트 이름이다.
	Context string
	// Previous는 직전까지 활성이었던 프로필이다.
	Previous string
	// Current는 현재 시점의 활성 프로필이다.
	Current string
	// Next는 활성화될 예정인 프로필이다.
	Next string
}

// Listener는 단계 발행 시 호출되는 콜백이다.
type Listener func(ctx context.Context, tr Transition) error

// Subscription은 등록된 리스너를 해제할 때 쓰는 핸들이다.
type Subscription struct {
	stage Stage
	id    uint64
}

type entry struct {
	id uint64
	fn Listener
}

// Bus는 단계별 리스너 목록을 보관한다. 동기 단일 액터 전제이므로 잠금이 없다.
type Bus struct {
	listeners map[Stage][]entry
	nextID    uint64
}

// New는 빈 Bus를 생성한다.
func New() *Bus {
	return &Bus{listeners: make(map[Stage][]entry)}
}

// Subscribe는 리스너를 단계의 목록 끝에 등록하고 해제용 핸들을 반환한다.
func (b *Bus) Subscribe(stage Stage, fn Listener) (Subscription, error) {
	if !ValidStage(stage) {
		return Subscription{}, fmt.Errorf("hookbus.Subscribe: %q: %w", stage, ErrUnknownStage)
	}
	b.nextID++
	b.listeners[stage] = append(b.listeners[stage], entry{id: b.nextID, fn: fn})
	return Subscription{stage: stage, id: b.nextID}, nil
}

// Unsubscribe는 핸들에 해당하는 리스너를 제거한다. 이미 제거된 핸들은 무시된다.
func (b *Bus) Unsubscribe(sub Subscription) {
	entries := b.listeners[sub.stage]
	for i, e := range entries {
		if e.id == sub.id {
			b.listeners[sub.stage] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Publish는 단계의 리스너를 등록 순서대로 호출한다.
// 리스너가 에러를 반환하면 나머지 리스너는 호출되지 않는다.
func (b *Bus) Publish(ctx context.Context, stage Stage, tr Transition) error {
	if !ValidStage(stage) {
		return fmt.Errorf("hookbus.Publish: %q: %w", stage, ErrUnknownStage)
	}
	log.Debug().
		Str("stage", string(stage)).
		Str("context", tr.Context).
		Str("previous", tr.Previous).
		Str("current", tr.Current).
		Str("next", tr.Next).
		Msg("hook 단계 발행")
	for _, e := range b.listeners[stage] {
		if err := e.fn(ctx, tr); err != nil {
			return fmt.Errorf("hookbus.Publish: %s 단계: %w: %w", stage, ErrListener, err)
		}
	}
	return nil
}

// Count는 단계에 등록된 리스너 수를 반환한다.
func (b *Bus) Count(stage Stage) int {
	return len(b.listeners[stage])
}
