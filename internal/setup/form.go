package setup

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

func validateName(kind string, existing []string, allowExisting bool) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s 이름을 입력하세요", kind)
		}
		if !nameRegex.MatchString(s) {
			return fmt.Errorf("영문, 숫자, 하이픈, 밑줄만 사용 가능합니다")
		}
		if !allowExisting {
			for _, n := range existing {
				if n == s {
					return fmt.Errorf("이미 존재하는 %s 이름입니다: %s", kind, s)
				}
			}
		}
		return nil
	}
}

// RunActionSelect는 작업 선택 UI를 표시한다.
func (h *HuhFormRunner) RunActionSelect() (Action, error) {
	var action Action
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[Action]().
			Title("작업을 선택하세요").
			Options(
				huh.NewOption("프로필 추가", ActionAdd),
				huh.NewOption("프로필 수정", ActionEdit),
				huh.NewOption("프로필 삭제", ActionDelete),
			).
			Value(&action),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunActionSelect: %w", err)
	}
	return action, nil
}

// RunContextInput은 컨텍스트 이름 입력 폼을 실행한다.
func (h *HuhFormRunner) RunContextInput(existing []string) (string, error) {
	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("컨텍스트 이름").
			Suggestions(existing).
			Value(&name).
			Validate(validateName("컨텍스트", nil, true)),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunContextInput: %w", err)
	}
	return name, nil
}

// RunContextSelect는 컨텍스트 선택 UI를 표시한다.
func (h *HuhFormRunner) RunContextSelect(names []string) (string, error) {
	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("컨텍스트를 선택하세요").
			Options(huh.NewOptions(names...)...).
			Value(&name),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunContextSelect: %w", err)
	}
	return name, nil
}

// RunProfileSelect는 프로필 선택 UI를 표시한다.
func (h *HuhFormRunner) RunProfileSelect(names []string) (string, error) {
	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("프로필을 선택하세요").
			Options(huh.NewOptions(names...)...).
			Value(&name),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunProfileSelect: %w", err)
	}
	return name, nil
}

// RunProfileForm은 프로필 입력 폼을 실행한다.
func (h *HuhFormRunner) RunProfileForm(defaults *ProfileInput, existingNames []string) (*ProfileInput, error) {
	input := &ProfileInput{}
	editing := defaults != nil
	if editing {
		*input = *defaults
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("프로필 이름").
			Value(&input.Name).
			Validate(validateName("프로필", existingNames, editing)),
		huh.NewInput().
			Title("활성화 명령 (선택)").
			Description("프로필 활성화 시 셸로 실행됩니다").
			Value(&input.OnActivate),
		huh.NewInput().
			Title("비활성화 명령 (선택)").
			Description("다른 프로필로 전환되기 직전에 실행됩니다").
			Value(&input.OnDeactivate),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunProfileForm: %w", err)
	}
	return input, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return ok, nil
}
