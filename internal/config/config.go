package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// ErrCodeInvalid 表示配置文件无法读取/解析，或字段不合法。
	ErrCodeInvalid = "config_invalid"
	// ErrCodeYearRange 表示年份区间不合法（from > to 或非正数）。
	ErrCodeYearRange = "config_year_range"
)

// EnvPrefix 是环境变量前缀：years.from => SEIMEI_YEARS_FROM。
const EnvPrefix = "SEIMEI"

const (
	DefaultSource      = "benesse"
	DefaultBaseURL     = "https://st.benesse.ne.jp/ninshin/name/"
	DefaultYearFrom    = 2005
	DefaultYearTo      = 2025
	DefaultConcurrency = 1
	MaxConcurrency     = 16
	DefaultTimeout     = 10 * time.Second

	DefaultHarvestOutput = "js/given_names_generated.js"
	DefaultCleanInput    = "js/given_names.js"
	DefaultCleanOutput   = "js/given_names_cleaned.js"
	DefaultMergeOutput   = "js/given_names.js"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// DefaultMergeInputs 按优先级排列：抓取结果在前，手工整理表在后。
var DefaultMergeInputs = []string{DefaultHarvestOutput, DefaultCleanOutput}

// configNames 是 cwd 下自动发现的配置文件名（按顺序取第一个存在的）。
var configNames = []string{"seimei.yaml", "seimei.yml", "seimei.json", "seimei.toml"}

// EffectiveConfig 是合并并做最小规范化后的最终配置（实现层直接消费，不再做二次默认/优先级判断）。
//
// 约束：所有路径均为绝对路径。
type EffectiveConfig struct {
	// ConfigFile 是实际读取的配置文件；未读取任何文件时为空。
	ConfigFile string

	Source  string
	BaseURL string

	YearFrom int
	YearTo   int

	Concurrency int
	HTTPTimeout time.Duration
	ProxyURL    string

	HarvestOutput string
	ReportPath    string
	SnapshotDir   string

	CleanInput  string
	CleanOutput string

	MergeInputs []string
	MergeOutput string

	LogLevel  string
	LogFormat string
}

// Years 返回区间内的年份数。
func (c EffectiveConfig) Years() int { return c.YearTo - c.YearFrom + 1 }

// Error 是配置阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeInvalid:
		if e.Path == "" {
			return fmt.Sprintf("%s：%v", e.Code, e.Err)
		}
		if e.Err != nil {
			return fmt.Sprintf("%s：配置文件 %q 无效：%v", e.Code, e.Path, e.Err)
		}
		return fmt.Sprintf("%s：配置文件 %q 无效", e.Code, e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s：%v", e.Code, e.Err)
		}
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// LoadEnvFiles 依次加载 <cwd>/.env 与 <cwd>/.env.local（都是可选的）。
// 已存在的环境变量不会被覆盖。
func LoadEnvFiles(cwd string) error {
	for _, name := range []string{".env", ".env.local"} {
		p := filepath.Join(cwd, name)
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return &Error{Code: ErrCodeInvalid, Path: p, Err: err}
		}
	}
	return nil
}

// LoadEffective 读取配置并与默认值、环境变量合并为最终配置。
//
// 覆盖优先级（固定）：SEIMEI_* 环境变量 > 配置文件 > 内置默认。
//
// 配置文件发现规则：
// 1) configFile 非空：必须存在且可解析
// 2) configFile 为空：按 seimei.yaml/.yml/.json/.toml 顺序在 cwd 查找，找不到不报错
func LoadEffective(cwd, configFile string) (EffectiveConfig, error) {
	cwdAbs, err := filepath.Abs(cwd)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cwd, Err: err}
	}

	v := newViper()

	cfgPath := ""
	if strings.TrimSpace(configFile) != "" {
		cfgPath = absCleanFrom(cwdAbs, configFile)
		if _, err := os.Stat(cfgPath); err != nil {
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
		}
	} else {
		cfgPath = discover(cwdAbs)
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
		}
	}

	return build(cwdAbs, v, cfgPath)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("source", DefaultSource)
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("years.from", DefaultYearFrom)
	v.SetDefault("years.to", DefaultYearTo)
	v.SetDefault("http.concurrency", DefaultConcurrency)
	v.SetDefault("http.timeout", DefaultTimeout)
	v.SetDefault("http.proxy_url", "")
	v.SetDefault("harvest.output", DefaultHarvestOutput)
	v.SetDefault("harvest.report_path", "")
	v.SetDefault("harvest.snapshot_dir", "")
	v.SetDefault("clean.input", DefaultCleanInput)
	v.SetDefault("clean.output", DefaultCleanOutput)
	v.SetDefault("merge.inputs", DefaultMergeInputs)
	v.SetDefault("merge.output", DefaultMergeOutput)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func discover(cwd string) string {
	for _, name := range configNames {
		p := filepath.Join(cwd, name)
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

func build(cwd string, v *viper.Viper, cfgPath string) (EffectiveConfig, error) {
	invalid := func(format string, args ...any) error {
		return &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: fmt.Errorf(format, args...)}
	}

	src := strings.ToLower(strings.TrimSpace(v.GetString("source")))
	if src == "" {
		return EffectiveConfig{}, invalid("source 不能为空")
	}

	baseURL := strings.TrimSpace(v.GetString("base_url"))
	if err := validateHTTPURL(baseURL); err != nil {
		return EffectiveConfig{}, invalid("base_url 无效：%w", err)
	}

	from, to := v.GetInt("years.from"), v.GetInt("years.to")
	if from <= 0 || to <= 0 || from > to {
		return EffectiveConfig{}, &Error{Code: ErrCodeYearRange, Path: cfgPath, Err: fmt.Errorf("年份区间无效：%d-%d", from, to)}
	}

	// 超出 [1, MaxConcurrency] 截断。
	concurrency := v.GetInt("http.concurrency")
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > MaxConcurrency {
		concurrency = MaxConcurrency
	}

	timeout := v.GetDuration("http.timeout")
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	proxyURL := strings.TrimSpace(v.GetString("http.proxy_url"))
	if proxyURL != "" {
		u, err := url.Parse(proxyURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return EffectiveConfig{}, invalid("http.proxy_url 无效：%q", proxyURL)
		}
	}

	inputs := stringList(v.GetStringSlice("merge.inputs"))
	if len(inputs) < 2 {
		return EffectiveConfig{}, invalid("merge.inputs 至少需要 2 个文件，实际 %d 个", len(inputs))
	}
	for i := range inputs {
		inputs[i] = absCleanFrom(cwd, inputs[i])
	}

	level := strings.ToLower(strings.TrimSpace(v.GetString("log.level")))
	format := strings.ToLower(strings.TrimSpace(v.GetString("log.format")))
	switch format {
	case "console", "json":
	default:
		return EffectiveConfig{}, invalid("log.format 只能是 console 或 json，实际是 %q", format)
	}

	out := EffectiveConfig{
		ConfigFile:    cfgPath,
		Source:        src,
		BaseURL:       baseURL,
		YearFrom:      from,
		YearTo:        to,
		Concurrency:   concurrency,
		HTTPTimeout:   timeout,
		ProxyURL:      proxyURL,
		HarvestOutput: absCleanFrom(cwd, v.GetString("harvest.output")),
		ReportPath:    absCleanFrom(cwd, v.GetString("harvest.report_path")),
		SnapshotDir:   absCleanFrom(cwd, v.GetString("harvest.snapshot_dir")),
		CleanInput:    absCleanFrom(cwd, v.GetString("clean.input")),
		CleanOutput:   absCleanFrom(cwd, v.GetString("clean.output")),
		MergeInputs:   inputs,
		MergeOutput:   absCleanFrom(cwd, v.GetString("merge.output")),
		LogLevel:      level,
		LogFormat:     format,
	}
	for k, p := range map[string]string{
		"harvest.output": out.HarvestOutput,
		"clean.input":    out.CleanInput,
		"clean.output":   out.CleanOutput,
		"merge.output":   out.MergeOutput,
	} {
		if p == "" {
			return EffectiveConfig{}, invalid("%s 不能为空", k)
		}
	}
	return out, nil
}

func validateHTTPURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("必须是 http/https：%q", s)
	}
	if u.Host == "" {
		return fmt.Errorf("缺少 host：%q", s)
	}
	return nil
}

// stringList 规整列表：环境变量里的 "a.js,b.js" 会被拆开；空项丢弃。
func stringList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// absCleanFrom 以 base 为基准，把 p 变为 clean + absolute。
// - p 为空：返回空串
// - p 若已是绝对路径：直接 Clean
// - p 若是相对路径：Join(base, p) 后 Clean
func absCleanFrom(base, p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	p = filepath.Clean(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(base, p))
}
