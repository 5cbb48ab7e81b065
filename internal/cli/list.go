package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbjs97/profsw/internal/binder"
	"github.com/hbjs97/profsw/internal/config"
)

func (a *App) newListCmd() *cobra.Command {
	var ctxName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "컨텍스트의 프로필 목록을 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, ctxName)
		},
	}
	cmd.Flags().StringVarP(&ctxName, "context", "c", "", "컨텍스트 이름 (기본: default_context)")
	return cmd
}

func (a *App) runList(cmd *cobra.Command, ctxName string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	ctxName = cfg.ResolveContext(ctxName)
	if ctxName == "" {
		return fmt.Errorf("cli.list: 컨텍스트를 지정하세요 (--context 플래그 또는 default_context 설정)")
	}
	if _, err := cfg.GetContext(ctxName); err != nil {
		return err
	}

	active := ""
	if os.Getenv(binder.EnvContext) == ctxName {
		active = os.Getenv(binder.EnvProfile)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "컨텍스트: %s\n", ctxName)
	for _, name := range cfg.ProfileNames(ctxName) {
		marker := " "
		if name == active {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, name)
	}
	return nil
}

func (a *App) newContextsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contexts",
		Short: "정의된 컨텍스트 목록을 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.CfgPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range cfg.ContextNames() {
				marker := " "
				if name == cfg.DefaultContext {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s (프로필 %d개)\n", marker, name, len(cfg.Contexts[name].Profiles))
			}
			return nil
		},
	}
}
