// Package engine은 한 컨텍스트 안에서 deactivate-then-activate 전환을
// 고정된 순서로 수행하는 전환 엔진이다.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hbjs97/profsw/internal/hookbus"
	"github.com/hbjs97/profsw/internal/registry"
)

// ErrUnknownProfile은 대상 컨텍스트에 등록되지 않은 프로필로 전환을 요청했을 때
// 반환된다. 어떤 콜백도 실행되기 전에 검출되므로 상태는 변하지 않는다.
var ErrUnknownProfile = errors.New("등록되지 않은 프로필")

// ErrCallback은 activate/deactivate 콜백이 실패할 때 래핑되는 sentinel error다.
var ErrCallback = errors.New("프로필 콜백 실행 실패")

// Engine은 레지스트리와 hook 버스를 묶어 전환 시퀀스를 수행한다.
type Engine struct {
	reg *registry.Registry
	bus *hookbus.Bus

	// 전역에서 동시에 하나의 전환만 허용한다. 콜백의 자기 자신과의
	// 동시 호출 금지 불변식을 지키기 위한 최소한의 잠금이다.
	mu sync.Mutex
}

// New는 Engine을 생성한다.
func New(reg *registry.Registry, bus *hookbus.Bus) *Engine {
	return &Engine{reg: reg, bus: bus}
}

// Registry는 엔진이 사용하는 레지스트리를 반환한다.
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}

// Bus는 엔진이 사용하는 hook 버스를 반환한다.
func (e *Engine) Bus() *hookbus.Bus {
	return e.bus
}

// Switch는 컨텍스트의 활성 프로필을 profileName으로 전환한다.
//
// 순서는 고정 계약이다: before-switch, before-deactivate, (deactivate 콜백),
// after-deactivate, before-activate, (activate 콜백), after-activate, after-switch.
// 이전 프로필의 비활성화는 새 프로필 활성화가 시작되기 전에 항상 완전히
// 커밋된다. 콜백이나 리스너가 실패하면 그 지점에서 시퀀스가 중단되며,
// 롤백이나 재시도는 없다 — 마지막으로 커밋된 활성 프로필 값이 그대로 남는다.
//
// 이미 활성인 프로필로의 전환도 전체 시퀀스를 다시 수행한다. 이 경우가
// 의미 있는 호출자라면 콜백을 멱등하게 작성해야 한다.
func (e *Engine) Switch(ctx context.Context, ctxName, profileName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctxName = e.reg.Resolve(ctxName)

	next, ok := e.reg.Profile(ctxName, profileName)
	if !ok {
		return fmt.Errorf("engine.Switch: %s/%s: %w", ctxName, profileName, ErrUnknownProfile)
	}

	active := e.reg.ActiveProfile(ctxName)
	deactivate := registry.Callback(registry.Noop)
	if active != "" {
		// 활성 프로필이 등록 해제된 경우에도 전환은 진행한다 (no-op deactivate).
		if prev, ok := e.reg.Profile(ctxName, active); ok {
			deactivate = prev.OnDeactivate
		}
	}

	log.Debug().
		Str("context", ctxName).
		Str("from", active).
		Str("to", profileName).
		Msg("프로필 전환 시작")

	tr := hookbus.Transition{
		Context: ctxName,
		Current: active,
		Next:    profileName,
	}

	if err := e.publish(ctx, hookbus.StageBeforeSwitch, tr); err != nil {
		return err
	}
	if err := e.publish(ctx, hookbus.StageBeforeDeactivate, tr); err != nil {
		return err
	}

	if err := deactivate(ctx); err != nil {
		return fmt.Errorf("engine.Switch: 프로필 %s 비활성화: %w: %w", active, ErrCallback, err)
	}

	// deactivate 커밋: 이 시점부터 activate 커밋 전까지 활성 프로필은 없다.
	tr.Previous = active
	tr.Current = ""
	e.reg.SetActive(ctxName, "")

	if err := e.publish(ctx, hookbus.StageAfterDeactivate, tr); err != nil {
		return err
	}
	if err := e.publish(ctx, hookbus.StageBeforeActivate, tr); err != nil {
		return err
	}

	if err := next.OnActivate(ctx); err != nil {
		return fmt.Errorf("engine.Switch: 프로필 %s 활성화: %w: %w", profileName, ErrCallback, err)
	}

	// activate 커밋.
	e.reg.SetActive(ctxName, profileName)
	tr.Current = profileName
	tr.Next = ""

	if err := e.publish(ctx, hookbus.StageAfterActivate, tr); err != nil {
		return err
	}
	if err := e.publish(ctx, hookbus.StageAfterSwitch, tr); err != nil {
		return err
	}

	log.Debug().
		Str("context", ctxName).
		Str("active", profileName).
		Msg("프로필 전환 완료")
	return nil
}

func (e *Engine) publish(ctx context.Context, stage hookbus.Stage, tr hookbus.Transition) error {
	if err := e.bus.Publish(ctx, stage, tr); err != nil {
		return fmt.Errorf("engine.Switch: %w", err)
	}
	return nil
}
