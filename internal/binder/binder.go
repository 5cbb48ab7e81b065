// Package binder는 설정 파일의 선언을 실행 가능한 형태로 묶는다.
// 프로필 명령은 레지스트리 콜백으로, 단계별 hook 명령은 버스 리스너로 등록된다.
package binder

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/hbjs97/profsw/internal/cmdexec"
	"github.com/hbjs97/profsw/internal/config"
	"github.com/hbjs97/profsw/internal/hookbus"
	"github.com/hbjs97/profsw/internal/registry"
)

// 콜백/hook 명령이 실행될 때 주입되는 환경변수 이름.
const (
	EnvContext  = "PROFSW_CONTEXT"
	EnvProfile  = "PROFSW_PROFILE"
	EnvPrevious = "PROFSW_PREVIOUS"
	EnvCurrent  = "PROFSW_CURRENT"
	EnvNext     = "PROFSW_NEXT"
	EnvStage    = "PROFSW_STAGE"
)

// Bind는 Config의 컨텍스트/프로필이 등록된 레지스트리와 hook 명령이
// 연결된 버스를 만든다. 등록 순서는 이름 정렬로 결정적이다.
func Bind(cfg *config.Config, cmd cmdexec.Commander) (*registry.Registry, *hookbus.Bus, error) {
	reg := registry.New(cfg.DefaultContext)
	bus := hookbus.New()

	for _, ctxName := range cfg.ContextNames() {
		reg.Define(ctxName)
		for _, profileName := range cfg.ProfileNames(ctxName) {
			p := cfg.Contexts[ctxName].Profiles[profileName]
			reg.AddProfile(ctxName, profileName,
				command(cmd, cfg.Shell, p.OnActivate, ctxName, profileName),
				command(cmd, cfg.Shell, p.OnDeactivate, ctxName, profileName),
			)
		}
	}

	stages := make([]string, 0, len(cfg.Hooks))
	for stage := range cfg.Hooks {
		stages = append(stages, stage)
	}
	sort.Strings(stages)
	for _, stage := range stages {
		for _, script := range cfg.Hooks[stage] {
			if _, err := bus.Subscribe(hookbus.Stage(stage), hook(cmd, cfg.Shell, stage, script)); err != nil {
				return nil, nil, fmt.Errorf("binder.Bind: %w", err)
			}
		}
	}

	return reg, bus, nil
}

// command는 셸 명령을 실행하는 레지스트리 콜백을 만든다. script가 비어 있으면
// no-op 콜백(nil)을 반환해 레지스트리 기본값에 맡긴다.
func command(cmd cmdexec.Commander, shell, script, ctxName, profileName string) registry.Callback {
	if script == "" {
		return nil
	}
	return func(ctx context.Context) error {
		env := map[string]string{
			EnvContext: ctxName,
			EnvProfile: profileName,
		}
		out, err := cmd.RunWithEnv(ctx, env, shell, "-c", script)
		if err != nil {
			return fmt.Errorf("binder: 명령 실행 실패 (%s/%s): %w: %s", ctxName, profileName, err, out)
		}
		log.Debug().
			Str("context", ctxName).
			Str("profile", profileName).
			Str("script", script).
			Msg("프로필 명령 실행")
		return nil
	}
}

// hook은 전환 상태를 환경변수로 넘겨 셸 명령을 실행하는 리스너를 만든다.
func hook(cmd cmdexec.Commander, shell, stage, script string) hookbus.Listener {
	return func(ctx context.Context, tr hookbus.Transition) error {
		env := map[string]string{
			EnvStage:    stage,
			EnvContext:  tr.Context,
			EnvPrevious: tr.Previous,
			EnvCurrent:  tr.Current,
			EnvNext:     tr.Next,
		}
		out, err := cmd.RunWithEnv(ctx, env, shell, "-c", script)
		if err != nil {
			return fmt.Errorf("binder: hook 명령 실행 실패 (%s): %w: %s", stage, err, out)
		}
		return nil
	}
}
