package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbjs97/profsw/internal/binder"
	"github.com/hbjs97/profsw/internal/config"
	"github.com/hbjs97/profsw/internal/engine"
	"github.com/hbjs97/profsw/internal/shell"
)

func (a *App) newSwitchCmd() *cobra.Command {
	var ctxName string
	var export bool
	var shellType string

	cmd := &cobra.Command{
		Use:   "switch [profile]",
		Short: "컨텍스트의 활성 프로필을 전환한다",
		Long: `컨텍스트의 활성 프로필을 전환한다.

이전 프로필의 on_deactivate, 새 프로필의 on_activate가 이 순서로 실행되고,
각 단계마다 hooks에 등록된 명령이 호출된다. 프로필을 생략하면 대화형으로
선택한다.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profileName := ""
			if len(args) > 0 {
				profileName = args[0]
			}
			return a.runSwitch(cmd, ctxName, profileName, export, shellType)
		},
	}
	cmd.Flags().StringVarP(&ctxName, "context", "c", "", "컨텍스트 이름 (기본: default_context)")
	cmd.Flags().BoolVar(&export, "export", false, "eval용 셸 export 명령을 출력")
	cmd.Flags().StringVar(&shellType, "shell", "zsh", "셸 유형 (bash, zsh, fish)")
	return cmd
}

func (a *App) runSwitch(cmd *cobra.Command, ctxName, profileName string, export bool, shellType string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	ctxName = cfg.ResolveContext(ctxName)
	if ctxName == "" {
		return fmt.Errorf("cli.switch: 컨텍스트를 지정하세요 (--context 플래그 또는 default_context 설정)")
	}
	if _, err := cfg.GetContext(ctxName); err != nil {
		return err
	}

	if profileName == "" {
		profileName, err = a.form().RunProfileSelect(cfg.ProfileNames(ctxName))
		if err != nil {
			return fmt.Errorf("cli.switch: %w", err)
		}
	}

	reg, bus, err := binder.Bind(cfg, a.Commander)
	if err != nil {
		return err
	}

	// 셸 환경에 기록된 직전 활성 프로필을 시드한다. 같은 컨텍스트의 등록된
	// 프로필일 때만 인정한다.
	envCtx := os.Getenv(binder.EnvContext)
	envProfile := os.Getenv(binder.EnvProfile)
	if envCtx == ctxName && envProfile != "" {
		if _, ok := reg.Profile(ctxName, envProfile); ok {
			reg.SetActive(ctxName, envProfile)
		}
	}

	eng := engine.New(reg, bus)
	if err := eng.Switch(cmd.Context(), ctxName, profileName); err != nil {
		return err
	}

	if export {
		fmt.Fprint(cmd.OutOrStdout(), shell.Activate(ctxName, profileName, shellType))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "프로필 전환 완료: %s/%s\n", ctxName, profileName)
	return nil
}
