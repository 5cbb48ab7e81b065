package cli

import (
	"github.com/spf13/cobra"

	"github.com/hbjs97/profsw/internal/setup"
)

func (a *App) newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "대화형으로 프로필을 추가/수정/삭제한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &setup.Runner{
				CfgPath:    a.CfgPath,
				FormRunner: a.form(),
			}
			return r.Run()
		},
	}
}
