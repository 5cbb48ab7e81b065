package setup

import (
	"fmt"
	"os"

	"github.com/hbjs97/profsw/internal/config"
)

// Runner는 interactive 프로필 관리의 진입점이다.
type Runner struct {
	CfgPath    string
	FormRunner FormRunner
}

// Run은 작업 선택부터 저장까지의 플로우를 실행한다.
// 설정 파일이 없으면 첫 프로필 추가 플로우로 진입한다.
func (r *Runner) Run() error {
	_, err := os.Stat(r.CfgPath)
	if os.IsNotExist(err) {
		return r.runFirstTime()
	}
	if err != nil {
		return fmt.Errorf("setup.Run: %w", err)
	}

	cfg, err := config.Load(r.CfgPath)
	if err != nil {
		return err
	}

	action, err := r.FormRunner.RunActionSelect()
	if err != nil {
		return err
	}

	switch action {
	case ActionAdd:
		err = r.addProfile(cfg)
	case ActionEdit:
		err = r.editProfile(cfg)
	case ActionDelete:
		err = r.deleteProfile(cfg)
	default:
		return fmt.Errorf("setup.Run: 알 수 없는 작업: %s", action)
	}
	if err != nil {
		return err
	}

	return config.Save(r.CfgPath, cfg)
}

func (r *Runner) runFirstTime() error {
	fmt.Println("profsw 초기 설정을 시작합니다.")

	cfg := &config.Config{
		Version:  1,
		Shell:    config.DefaultShell,
		Contexts: make(map[string]config.Context),
	}
	if err := r.addProfile(cfg); err != nil {
		return err
	}
	if err := config.Save(r.CfgPath, cfg); err != nil {
		return err
	}
	fmt.Printf("설정 파일이 저장되었습니다: %s\n", r.CfgPath)
	return nil
}

func (r *Runner) addProfile(cfg *config.Config) error {
	ctxName, err := r.FormRunner.RunContextInput(cfg.ContextNames())
	if err != nil {
		return err
	}

	input, err := r.FormRunner.RunProfileForm(nil, cfg.ProfileNames(ctxName))
	if err != nil {
		return err
	}

	if cfg.Contexts == nil {
		cfg.Contexts = make(map[string]config.Context)
	}
	ctx, ok := cfg.Contexts[ctxName]
	if !ok {
		ctx = config.Context{Profiles: make(map[string]config.Profile)}
	}
	ctx.Profiles[input.Name] = config.Profile{
		OnActivate:   input.OnActivate,
		OnDeactivate: input.OnDeactivate,
	}
	cfg.Contexts[ctxName] = ctx

	// 첫 컨텍스트라면 기본 컨텍스트로 지정한다.
	if cfg.DefaultContext == "" {
		cfg.DefaultContext = ctxName
	}
	return nil
}

func (r *Runner) editProfile(cfg *config.Config) error {
	ctxName, profileName, err := r.selectProfile(cfg)
	if err != nil {
		return err
	}

	existing := cfg.Contexts[ctxName].Profiles[profileName]
	defaults := &ProfileInput{
		Name:         profileName,
		OnActivate:   existing.OnActivate,
		OnDeactivate: existing.OnDeactivate,
	}
	input, err := r.FormRunner.RunProfileForm(defaults, cfg.ProfileNames(ctxName))
	if err != nil {
		return err
	}

	ctx := cfg.Contexts[ctxName]
	if input.Name != profileName {
		delete(ctx.Profiles, profileName)
	}
	ctx.Profiles[input.Name] = config.Profile{
		OnActivate:   input.OnActivate,
		OnDeactivate: input.OnDeactivate,
	}
	cfg.Contexts[ctxName] = ctx
	return nil
}

func (r *Runner) deleteProfile(cfg *config.Config) error {
	ctxName, profileName, err := r.selectProfile(cfg)
	if err != nil {
		return err
	}

	ok, err := r.FormRunner.RunConfirm(fmt.Sprintf("프로필 %s/%s를 삭제할까요?", ctxName, profileName))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	ctx := cfg.Contexts[ctxName]
	delete(ctx.Profiles, profileName)
	if len(ctx.Profiles) == 0 {
		delete(cfg.Contexts, ctxName)
		if cfg.DefaultContext == ctxName {
			cfg.DefaultContext = ""
		}
	} else {
		cfg.Contexts[ctxName] = ctx
	}
	return nil
}

func (r *Runner) selectProfile(cfg *config.Config) (string, string, error) {
	names := cfg.ContextNames()
	if len(names) == 0 {
		return "", "", fmt.Errorf("setup: 정의된 컨텍스트가 없습니다")
	}
	ctxName, err := r.FormRunner.RunContextSelect(names)
	if err != nil {
		return "", "", err
	}
	profileName, err := r.FormRunner.RunProfileSelect(cfg.ProfileNames(ctxName))
	if err != nil {
		return "", "", err
	}
	return ctxName, profileName, nil
}
