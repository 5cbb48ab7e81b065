package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/profsw/internal/config"
)

func (a *App) newClearCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clear [context]",
		Short: "컨텍스트를 설정에서 제거한다",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return a.runClear(cmd, name, all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "모든 컨텍스트를 제거")
	return cmd
}

func (a *App) runClear(cmd *cobra.Command, name string, all bool) error {
	if !all && name == "" {
		return fmt.Errorf("cli.clear: 컨텍스트 이름 또는 --all이 필요합니다")
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if all {
		for _, n := range cfg.ContextNames() {
			delete(cfg.Contexts, n)
		}
		cfg.DefaultContext = ""
		fmt.Fprintln(out, "모든 컨텍스트를 제거했습니다.")
	} else {
		// 존재하지 않는 컨텍스트 제거는 에러가 아니다.
		delete(cfg.Contexts, name)
		if cfg.DefaultContext == name {
			cfg.DefaultContext = ""
		}
		fmt.Fprintf(out, "컨텍스트 %s를 제거했습니다.\n", name)
	}

	return config.Save(a.CfgPath, cfg)
}
