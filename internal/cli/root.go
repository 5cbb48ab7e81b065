package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hbjs97/profsw/internal/cmdexec"
	"github.com/hbjs97/profsw/internal/setup"
)

// App은 CLI 명령들이 공유하는 의존성 묶음이다.
type App struct {
	// CfgPath는 설정 파일 경로다. --config 플래그로 덮어쓸 수 있다.
	CfgPath string
	// Commander는 콜백/hook 명령 실행기다. 테스트에서는 FakeCommander를 주입한다.
	Commander cmdexec.Commander
	// Form은 대화형 프롬프트 실행기다. 비어 있으면 huh 구현을 사용한다.
	Form setup.FormRunner

	verbose bool
}

// NewApp은 기본 의존성으로 App을 생성한다.
func NewApp() *App {
	return &App{
		CfgPath:   filepath.Join(homeDir(), ".config", "profsw", "config.toml"),
		Commander: &cmdexec.RealCommander{},
	}
}

// NewRootCmd는 profsw CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "profsw",
		Short:        "컨텍스트/프로필 전환 매니저",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if a.verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
		},
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "상세 출력")

	cmd.AddCommand(
		a.newSwitchCmd(),
		a.newStatusCmd(),
		a.newListCmd(),
		a.newContextsCmd(),
		a.newClearCmd(),
		a.newProfileCmd(),
		a.newSetupCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

// form은 주입된 FormRunner 또는 huh 기본 구현을 반환한다.
func (a *App) form() setup.FormRunner {
	if a.Form != nil {
		return a.Form
	}
	return &setup.HuhFormRunner{}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
