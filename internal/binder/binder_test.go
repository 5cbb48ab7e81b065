package binder_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/profsw/internal/binder"
	"github.com/hbjs97/profsw/internal/config"
	"github.com/hbjs97/profsw/internal/engine"
	"github.com/hbjs97/profsw/internal/hookbus"
	"github.com/hbjs97/profsw/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		Version:        1,
		DefaultContext: "email",
		Shell:          "sh",
		Contexts: map[string]config.Context{
			"email": {Profiles: map[string]config.Profile{
				"work":    {OnActivate: "gh auth switch work", OnDeactivate: "echo bye work"},
				"private": {OnActivate: "gh auth switch private"},
			}},
		},
		Hooks: map[string][]string{
			"after-switch": {"notify-send switched"},
		},
	}
}

func TestBind_RegistersProfiles(t *testing.T) {
	fc := testutil.NewFakeCommander()

	reg, _, err := binder.Bind(testConfig(), fc)
	require.NoError(t, err)

	assert.Equal(t, []string{"email"}, reg.Contexts())
	profiles := reg.Profiles("email")
	require.Len(t, profiles, 2)
	// 등록 순서는 이름 정렬로 결정적이다.
	assert.Equal(t, "private", profiles[0].Name)
	assert.Equal(t, "work", profiles[1].Name)
	assert.Equal(t, "", reg.ActiveProfile("email"))
}

func TestBind_CallbacksRunShellCommands(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{Output: []byte("ok")}

	reg, bus, err := binder.Bind(testConfig(), fc)
	require.NoError(t, err)

	eng := engine.New(reg, bus)
	require.NoError(t, eng.Switch(context.Background(), "email", "work"))

	assert.Equal(t, 1, fc.CallCount("sh -c gh auth switch work"))
	assert.Equal(t, 1, fc.CallCount("sh -c notify-send switched"))
}

func TestBind_CallbackEnvCarriesProfile(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{}

	reg, bus, err := binder.Bind(testConfig(), fc)
	require.NoError(t, err)

	eng := engine.New(reg, bus)
	require.NoError(t, eng.Switch(context.Background(), "email", "work"))

	require.NotEmpty(t, fc.EnvCalls)
	// 첫 호출은 work의 on_activate다 (활성 프로필이 없었으므로 deactivate 생략).
	env := fc.EnvCalls[0]
	assert.Equal(t, "email", env[binder.EnvContext])
	assert.Equal(t, "work", env[binder.EnvProfile])
}

func TestBind_DeactivateRunsBeforeActivate(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{}

	reg, bus, err := binder.Bind(testConfig(), fc)
	require.NoError(t, err)
	reg.SetActive("email", "work")

	eng := engine.New(reg, bus)
	require.NoError(t, eng.Switch(context.Background(), "email", "private"))

	var deactIdx, actIdx = -1, -1
	for i, call := range fc.Calls {
		switch call {
		case "sh -c echo bye work":
			deactIdx = i
		case "sh -c gh auth switch private":
			actIdx = i
		}
	}
	require.GreaterOrEqual(t, deactIdx, 0, "work의 on_deactivate가 실행되어야 한다")
	require.GreaterOrEqual(t, actIdx, 0, "private의 on_activate가 실행되어야 한다")
	assert.Less(t, deactIdx, actIdx)
}

func TestBind_EmptyCommandIsNoop(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{}

	reg, bus, err := binder.Bind(testConfig(), fc)
	require.NoError(t, err)
	reg.SetActive("email", "private") // private은 on_deactivate가 없다

	eng := engine.New(reg, bus)
	require.NoError(t, eng.Switch(context.Background(), "email", "work"))

	for _, call := range fc.Calls {
		assert.NotEqual(t, "sh -c ", call, "빈 명령은 실행되지 않아야 한다")
	}
}

func TestBind_HookEnvCarriesTransition(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{}

	cfg := testConfig()
	cfg.Hooks = map[string][]string{
		"after-deactivate": {"echo hook"},
	}

	reg, bus, err := binder.Bind(cfg, fc)
	require.NoError(t, err)
	reg.SetActive("email", "work")

	eng := engine.New(reg, bus)
	require.NoError(t, eng.Switch(context.Background(), "email", "private"))

	var hookEnv map[string]string
	for i, call := range fc.Calls {
		if call == "sh -c echo hook" {
			hookEnv = fc.EnvCalls[i]
		}
	}
	require.NotNil(t, hookEnv, "hook 명령이 실행되어야 한다")
	assert.Equal(t, "after-deactivate", hookEnv[binder.EnvStage])
	assert.Equal(t, "email", hookEnv[binder.EnvContext])
	assert.Equal(t, "work", hookEnv[binder.EnvPrevious])
	assert.Equal(t, "", hookEnv[binder.EnvCurrent])
	assert.Equal(t, "private", hookEnv[binder.EnvNext])
}

func TestBind_FailingHookAbortsSwitch(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{}
	fc.Register("sh -c exit 1", "", fmt.Errorf("exit status 1"))

	cfg := testConfig()
	cfg.Hooks = map[string][]string{
		"before-activate": {"exit 1"},
	}

	reg, bus, err := binder.Bind(cfg, fc)
	require.NoError(t, err)
	reg.SetActive("email", "work")

	eng := engine.New(reg, bus)
	err = eng.Switch(context.Background(), "email", "private")
	require.Error(t, err)
	assert.ErrorIs(t, err, hookbus.ErrListener)
	// activate 커밋 전 중단 — 활성 프로필 없음.
	assert.Equal(t, "", reg.ActiveProfile("email"))
	assert.False(t, fc.Called("sh -c gh auth switch private"))
}

func TestBind_FailingCallbackSurfacesError(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{}
	fc.Register("sh -c gh auth switch work", "permission denied", fmt.Errorf("exit status 1"))

	reg, bus, err := binder.Bind(testConfig(), fc)
	require.NoError(t, err)

	eng := engine.New(reg, bus)
	err = eng.Switch(context.Background(), "email", "work")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrCallback)
	assert.Contains(t, err.Error(), "permission denied")
}
