package setup

// Action은 대화형 설정에서 사용자가 선택하는 작업이다.
type Action string

const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// ProfileInput은 프로필 생성/수정 시 사용자 입력 값이다.
type ProfileInput struct {
	// Name은 프로필 이름이다.
	Name string
	// OnActivate는 활성화 시 실행할 셸 명령이다. 비워두면 no-op.
	OnActivate string
	// OnDeactivate는 비활성화 시 실행할 셸 명령이다. 비워두면 no-op.
	OnDeactivate string
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunActionSelect는 작업 선택 UI를 표시한다.
	RunActionSelect() (Action, error)

	// RunContextInput은 컨텍스트 이름을 입력받는다. existing은 자동완성
	// 후보로 표시되며, 새 이름 입력도 허용된다.
	RunContextInput(existing []string) (string, error)

	// RunContextSelect는 기존 컨텍스트 목록에서 하나를 선택한다.
	RunContextSelect(names []string) (string, error)

	// RunProfileSelect는 프로필 목록에서 하나를 선택한다.
	RunProfileSelect(names []string) (string, error)

	// RunProfileForm은 프로필 입력 폼을 실행한다.
	// defaults가 nil이 아니면 기존 값을 기본값으로 표시한다 (수정 모드).
	RunProfileForm(defaults *ProfileInput, existingNames []string) (*ProfileInput, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
