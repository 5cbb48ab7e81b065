package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbjs97/profsw/internal/binder"
	"github.com/hbjs97/profsw/internal/config"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "셸 환경에 기록된 활성 프로필을 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd)
		},
	}
}

func (a *App) runStatus(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	ctxName := os.Getenv(binder.EnvContext)
	profileName := os.Getenv(binder.EnvProfile)
	if ctxName == "" || profileName == "" {
		fmt.Fprintln(out, "활성 프로필이 없습니다. 'profsw switch'를 실행하세요.")
		return nil
	}

	fmt.Fprintf(out, "컨텍스트: %s\n", ctxName)
	fmt.Fprintf(out, "프로필:   %s\n", profileName)

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}
	p, err := cfg.GetProfile(ctxName, profileName)
	if err != nil {
		fmt.Fprintln(out, "경고: 이 프로필은 현재 설정에 없습니다.")
		return nil
	}
	if p.OnActivate != "" {
		fmt.Fprintf(out, "  on_activate:   %s\n", p.OnActivate)
	}
	if p.OnDeactivate != "" {
		fmt.Fprintf(out, "  on_deactivate: %s\n", p.OnDeactivate)
	}
	return nil
}
