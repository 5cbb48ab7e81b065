package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// setupTemplate는 profsw setup이 생성하는 기본 config.toml 내용이다.
const setupTemplate = `# profsw configuration file

version = 1
default_context = "email"
# shell = "sh"

[contexts.email.profiles.work]
on_activate = "echo work profile on"
on_deactivate = "echo work profile off"

[contexts.email.profiles.private]
on_activate = "echo private profile on"

# [hooks]
# after-switch = ["echo switched to $PROFSW_CURRENT"]
`

func (a *App) newSetupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "profsw 초기 설정 파일을 생성한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 덮어쓴다")
	return cmd
}

// runSetup는 설정 파일 템플릿을 생성한다.
func (a *App) runSetup(cmd *cobra.Command, force bool) error {
	if _, err := os.Stat(a.CfgPath); err == nil {
		if !force {
			return fmt.Errorf("cli.setup: 설정 파일이 이미 존재합니다: %s", a.CfgPath)
		}
		if err := os.Remove(a.CfgPath); err != nil {
			return fmt.Errorf("cli.setup: 기존 설정 파일 제거 실패: %w", err)
		}
	}

	dir := filepath.Dir(a.CfgPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("cli.setup: 디렉토리 생성 실패: %w", err)
	}

	if err := os.WriteFile(a.CfgPath, []byte(setupTemplate), 0600); err != nil {
		return fmt.Errorf("cli.setup: 설정 파일 생성 실패: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
	fmt.Fprintln(out, "프로필을 수정한 후 profsw doctor로 환경을 확인하세요.")
	return nil
}
