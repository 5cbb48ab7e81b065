package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/hbjs97/profsw/internal/hookbus"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// DefaultShell은 콜백/hook 명령을 실행할 기본 인터프리터다.
const DefaultShell = "sh"

// Config는 profsw 설정 파일의 최상위 구조체다.
type Config struct {
	Version        int                 `toml:"version"`
	DefaultContext string              `toml:"default_context"`
	Shell          string              `toml:"shell"`
	Contexts       map[string]Context  `toml:"contexts"`
	Hooks          map[string][]string `toml:"hooks"`
}

// Context는 상호 배타적인 프로필들의 네임스페이스다.
type Context struct {
	Profiles map[string]Profile `toml:"profiles"`
}

// Profile은 하나의 프로필 선언이다. 명령은 셸 인터프리터로 실행되며
// 비워두면 no-op이다.
type Profile struct {
	OnActivate   string `toml:"on_activate"`
	OnDeactivate string `toml:"on_deactivate"`
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 TOML 파일로 저장한다 (0600 권한, 상위 디렉토리 0700).
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// GetContext는 이름으로 컨텍스트 선언을 찾는다.
func (c *Config) GetContext(name string) (*Context, error) {
	ctx, ok := c.Contexts[name]
	if !ok {
		return nil, fmt.Errorf("config.GetContext: 컨텍스트 %q 없음: %w", name, ErrConfig)
	}
	return &ctx, nil
}

// GetProfile은 컨텍스트에서 이름으로 프로필 선언을 찾는다.
func (c *Config) GetProfile(ctxName, profileName string) (*Profile, error) {
	ctx, err := c.GetContext(ctxName)
	if err != nil {
		return nil, err
	}
	p, ok := ctx.Profiles[profileName]
	if !ok {
		return nil, fmt.Errorf("config.GetProfile: 프로필 %s/%s 없음: %w", ctxName, profileName, ErrConfig)
	}
	return &p, nil
}

// ResolveContext는 컨텍스트 이름을 결정한다. 명시된 이름이 우선하고,
// 빈 문자열이면 default_context로 해석된다.
func (c *Config) ResolveContext(name string) string {
	if name != "" {
		return name
	}
	return c.DefaultContext
}

// ContextNames는 선언된 컨텍스트 이름을 정렬하여 반환한다.
func (c *Config) ContextNames() []string {
	names := make([]string, 0, len(c.Contexts))
	for name := range c.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProfileNames는 컨텍스트의 프로필 이름을 정렬하여 반환한다.
func (c *Config) ProfileNames(ctxName string) []string {
	ctx, ok := c.Contexts[ctxName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(ctx.Profiles))
	for name := range ctx.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateFilePermissions는 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s 권한이 %o (0600 필요)", path, perm)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Shell == "" {
		c.Shell = DefaultShell
	}
}

// validate는 구조적 오류만 거른다. 컨텍스트가 하나도 없는 설정은 유효하다.
// clear --all 직후 상태이며, 이후 profile/setup 명령으로 다시 채울 수 있어야 한다.
func (c *Config) validate() error {
	for name, ctx := range c.Contexts {
		if len(ctx.Profiles) == 0 {
			return fmt.Errorf("config.Load: contexts.%s에 프로필이 없습니다: %w", name, ErrConfig)
		}
	}
	if c.DefaultContext != "" {
		if _, ok := c.Contexts[c.DefaultContext]; !ok {
			return fmt.Errorf("config.Load: default_context %q가 정의되지 않았습니다: %w", c.DefaultContext, ErrConfig)
		}
	}
	for stage := range c.Hooks {
		if !hookbus.ValidStage(hookbus.Stage(stage)) {
			return fmt.Errorf("config.Load: hooks.%s는 유효한 단계가 아닙니다: %w", stage, ErrConfig)
		}
	}
	return nil
}
