package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/profsw/internal/registry"
)

func TestDefine_Idempotent(t *testing.T) {
	r := registry.New("default")

	r.Define("email")
	r.AddProfile("email", "work", nil, nil)
	r.Define("email") // 이미 존재 — no-op이어야 한다

	assert.Equal(t, []string{"email"}, r.Contexts())
	assert.Len(t, r.Profiles("email"), 1)
}

func TestDefine_EmptyNameUsesDefault(t *testing.T) {
	r := registry.New("main")

	r.Define("")

	assert.Equal(t, []string{"main"}, r.Contexts())
}

func TestAddProfile_ImplicitDefine(t *testing.T) {
	r := registry.New("default")

	r.AddProfile("email", "work", nil, nil)

	assert.Equal(t, []string{"email"}, r.Contexts())
	p, ok := r.Profile("email", "work")
	require.True(t, ok)
	assert.Equal(t, "work", p.Name)
}

func TestAddProfile_NilCallbacksBecomeNoops(t *testing.T) {
	r := registry.New("default")

	r.AddProfile("email", "work", nil, nil)

	p, ok := r.Profile("email", "work")
	require.True(t, ok)
	require.NotNil(t, p.OnActivate)
	require.NotNil(t, p.OnDeactivate)
	assert.NoError(t, p.OnActivate(context.Background()))
	assert.NoError(t, p.OnDeactivate(context.Background()))
}

func TestAddProfile_ReplaceSemantics(t *testing.T) {
	r := registry.New("default")

	var first, second int
	r.AddProfile("email", "work", func(context.Context) error {
		first++
		return nil
	}, nil)
	r.AddProfile("email", "work", func(context.Context) error {
		second++
		return nil
	}, nil)

	// 교체이지 복제가 아니다.
	profiles := r.Profiles("email")
	require.Len(t, profiles, 1)

	p, ok := r.Profile("email", "work")
	require.True(t, ok)
	require.NoError(t, p.OnActivate(context.Background()))
	assert.Equal(t, 0, first, "이전 콜백은 더 이상 호출되지 않아야 한다")
	assert.Equal(t, 1, second)
}

func TestProfiles_InsertionOrder(t *testing.T) {
	r := registry.New("default")

	r.AddProfile("email", "work", nil, nil)
	r.AddProfile("email", "private", nil, nil)
	r.AddProfile("email", "work", nil, nil) // 교체는 순서를 바꾸지 않는다

	profiles := r.Profiles("email")
	require.Len(t, profiles, 2)
	assert.Equal(t, "work", profiles[0].Name)
	assert.Equal(t, "private", profiles[1].Name)
}

func TestProfiles_ReadOnlyView(t *testing.T) {
	r := registry.New("default")

	var calls int
	r.AddProfile("email", "work", func(context.Context) error {
		calls++
		return nil
	}, nil)

	// 반환된 요소를 변조해도 레지스트리의 콜백 쌍은 바뀌지 않는다.
	view := r.Profiles("email")
	require.Len(t, view, 1)
	view[0].Name = "hacked"
	view[0].OnActivate = func(context.Context) error {
		t.Fatal("변조된 콜백이 호출되면 안 된다")
		return nil
	}

	p, ok := r.Profile("email", "work")
	require.True(t, ok)
	assert.Equal(t, "work", p.Name)
	require.NoError(t, p.OnActivate(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestProfiles_UnknownContext(t *testing.T) {
	r := registry.New("default")
	assert.Empty(t, r.Profiles("nope"))
}

func TestActiveProfile_EmptyUntilSet(t *testing.T) {
	r := registry.New("default")
	r.AddProfile("email", "work", nil, nil)

	assert.Equal(t, "", r.ActiveProfile("email"))

	r.SetActive("email", "work")
	assert.Equal(t, "work", r.ActiveProfile("email"))
}

func TestClear_ResetsAndForgets(t *testing.T) {
	r := registry.New("default")
	r.AddProfile("email", "work", nil, nil)
	r.SetActive("email", "work")

	r.Clear("email")

	assert.Equal(t, "", r.ActiveProfile("email"))
	assert.Empty(t, r.Profiles("email"))
	assert.Empty(t, r.Contexts())
}

func TestClear_UnknownContextIsNoop(t *testing.T) {
	r := registry.New("default")
	r.AddProfile("email", "work", nil, nil)

	r.Clear("nope")

	assert.Equal(t, []string{"email"}, r.Contexts())
}

func TestClearAll(t *testing.T) {
	r := registry.New("default")
	r.AddProfile("email", "work", nil, nil)
	r.AddProfile("vpn", "office", nil, nil)
	r.SetActive("vpn", "office")

	r.ClearAll()

	assert.Empty(t, r.Contexts())
	assert.Equal(t, "", r.ActiveProfile("vpn"))
}

func TestResolve_ExplicitWins(t *testing.T) {
	r := registry.New("default")

	assert.Equal(t, "email", r.Resolve("email"))
	assert.Equal(t, "default", r.Resolve(""))
}
