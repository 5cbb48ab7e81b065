// Package registry는 컨텍스트와 프로필의 인메모리 저장소다.
// 하나의 컨텍스트는 상호 배타적인 프로필 집합과 활성 프로필 하나를 가진다.
package registry

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Callback은 프로필 활성화/비활성화 시 실행되는 콜백이다.
type Callback func(ctx context.Context) error

// Noop은 아무 일도 하지 않는 콜백이다. 생략된 콜백의 기본값으로 쓰인다.
func Noop(context.Context) error { return nil }

// Profile은 활성화/비활성화 콜백 쌍을 가진 이름 있는 설정 단위다.
type Profile struct {
	Name         string
	OnActivate   Callback
	OnDeactivate Callback
}

// holder는 한 컨텍스트의 프로필 집합과 활성 프로필이다.
// profiles의 삽입 순서를 order에 별도로 유지한다.
type holder struct {
	profiles map[string]*Profile
	order    []string
	active   string // "" = 활성 프로필 없음
}

func newHolder() *holder {
	return &holder{profiles: make(map[string]*Profile)}
}

// Registry는 이름으로 컨텍스트를 보관한다.
type Registry struct {
	contexts   map[string]*holder
	order      []string
	defaultCtx string
}

// New는 빈 Registry를 생성한다. defaultCtx는 이름이 생략된 호출에서 쓰이는
// 기본 컨텍스트 이름이다.
func New(defaultCtx string) *Registry {
	return &Registry{
		contexts:   make(map[string]*holder),
		defaultCtx: defaultCtx,
	}
}

// Resolve는 컨텍스트 이름을 결정한다. 명시된 이름이 우선하고,
// 빈 문자열이면 기본 컨텍스트 이름으로 해석된다. 부수 효과는 debug trace뿐이다.
func (r *Registry) Resolve(name string) string {
	if name != "" {
		return name
	}
	log.Debug().Str("context", r.defaultCtx).Msg("기본 컨텍스트로 해석")
	return r.defaultCtx
}

// DefaultContext는 설정된 기본 컨텍스트 이름을 반환한다.
func (r *Registry) DefaultContext() string {
	return r.defaultCtx
}

// Define은 컨텍스트가 없으면 빈 상태로 생성한다. 이미 있으면 아무 일도 하지 않는다.
func (r *Registry) Define(name string) {
	name = r.Resolve(name)
	if _, ok := r.contexts[name]; ok {
		return
	}
	r.contexts[name] = newHolder()
	r.order = append(r.order, name)
}

// Clear는 컨텍스트를 빈 상태로 되돌리고 알려진 컨텍스트 목록에서 제거한다.
// 존재하지 않는 컨텍스트여도 에러가 아니다.
func (r *Registry) Clear(name string) {
	name = r.Resolve(name)
	if _, ok := r.contexts[name]; !ok {
		return
	}
	delete(r.contexts, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// ClearAll은 알려진 모든 컨텍스트에 Clear를 적용한다.
func (r *Registry) ClearAll() {
	for _, name := range append([]string(nil), r.order...) {
		r.Clear(name)
	}
}

// AddProfile은 컨텍스트를 (없으면) 생성한 뒤 프로필을 등록한다.
// 같은 이름이 이미 있으면 콜백 쌍만 교체된다 (복제가 아니라 제자리 갱신).
// nil 콜백은 no-op으로 대체된다.
func (r *Registry) AddProfile(ctxName, profileName string, onActivate, onDeactivate Callback) {
	ctxName = r.Resolve(ctxName)
	r.Define(ctxName)
	if onActivate == nil {
		onActivate = Noop
	}
	if onDeactivate == nil {
		onDeactivate = Noop
	}
	h := r.contexts[ctxName]
	if p, ok := h.profiles[profileName]; ok {
		p.OnActivate = onActivate
		p.OnDeactivate = onDeactivate
		return
	}
	h.profiles[profileName] = &Profile{
		Name:         profileName,
		OnActivate:   onActivate,
		OnDeactivate: onDeactivate,
	}
	h.order = append(h.order, profileName)
}

// Profile은 컨텍스트에서 이름으로 프로필을 찾는다.
func (r *Registry) Profile(ctxName, profileName string) (*Profile, bool) {
	h, ok := r.contexts[r.Resolve(ctxName)]
	if !ok {
		return nil, false
	}
	p, ok := h.profiles[profileName]
	return p, ok
}

// Profiles는 컨텍스트의 프로필을 등록 순서대로 반환한다.
// 요소까지 값 복사한 읽기 전용 뷰이므로 수정해도 레지스트리에 영향이 없다.
// 콜백 교체는 AddProfile을 통해서만 일어난다.
func (r *Registry) Profiles(ctxName string) []Profile {
	h, ok := r.contexts[r.Resolve(ctxName)]
	if !ok {
		return nil
	}
	out := make([]Profile, 0, len(h.order))
	for _, name := range h.order {
		out = append(out, *h.profiles[name])
	}
	return out
}

// ActiveProfile은 활성 프로필 이름을 반환한다. 없으면 빈 문자열이다.
func (r *Registry) ActiveProfile(ctxName string) string {
	h, ok := r.contexts[r.Resolve(ctxName)]
	if !ok {
		return ""
	}
	return h.active
}

// SetActive는 컨텍스트의 활성 프로필을 기록한다. 전환 순서 보장은
// engine의 책임이므로 여기서는 값만 갱신한다.
func (r *Registry) SetActive(ctxName, profileName string) {
	ctxName = r.Resolve(ctxName)
	r.Define(ctxName)
	r.contexts[ctxName].active = profileName
}

// Contexts는 알려진 컨텍스트 이름을 정의 순서대로 반환한다.
func (r *Registry) Contexts() []string {
	return append([]string(nil), r.order...)
}
