package shell

import "fmt"

// Activate는 전환 결과를 셸 환경에 반영하는 export 명령을 생성한다.
func Activate(contextName, profileName, shellType string) string {
	switch shellType {
	case "fish":
		return fmt.Sprintf(
			"set -gx PROFSW_CONTEXT %q\nset -gx PROFSW_PROFILE %q\n",
			contextName, profileName,
		)
	default: // bash, zsh, sh
		return fmt.Sprintf(
			"export PROFSW_CONTEXT=%q\nexport PROFSW_PROFILE=%q\n",
			contextName, profileName,
		)
	}
}

// Deactivate는 활성 프로필 표시를 지우는 unset 명령을 생성한다.
func Deactivate(shellType string) string {
	switch shellType {
	case "fish":
		return "set -e PROFSW_CONTEXT\nset -e PROFSW_PROFILE\n"
	default:
		return "unset PROFSW_CONTEXT\nunset PROFSW_PROFILE\n"
	}
}
