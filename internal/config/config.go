// Package config loads fitbook settings from config.ini, a .env file and
// FITBOOK_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/inovacc/fitbook/internal/application"
	"github.com/inovacc/fitbook/internal/model"
	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// ValidationError lists every invalid setting.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for k, v := range e.Fields {
		parts = append(parts, k+": "+v)
	}

	slices.Sort(parts)

	return "invalid configuration: " + strings.Join(parts, "; ")
}

// Load builds the configuration. A missing file at path is not an error.
// An empty path uses the file in the application directory.
func Load(path string) (model.Config, error) {
	_ = godotenv.Load() // .env is optional

	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (model.Config, error) {
	f := toFile(model.DefaultConfig())

	if path == "" {
		p, err := application.ConfigPath()
		if err != nil {
			return model.Config{}, err
		}

		path = p
	}

	if _, err := os.Stat(path); err == nil {
		if err := f.Append(path); err != nil {
			return model.Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return model.Config{}, fmt.Errorf("stat %s: %w", path, err)
	}

	applyEnv(f, lookup)

	var cfg model.Config
	if err := f.MapTo(&cfg); err != nil {
		return model.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return model.Config{}, err
	}

	return cfg, nil
}

// applyEnv overrides every known key with FITBOOK_<SECTION>_<KEY>.
func applyEnv(f *ini.File, lookup func(string) (string, bool)) {
	for _, section := range f.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}

		for _, key := range section.Keys() {
			name := EnvName(section.Name(), key.Name())
			if v, ok := lookup(name); ok && v != "" {
				key.SetValue(v)
			}
		}
	}
}

// EnvName returns the environment variable that overrides section.key.
func EnvName(section, key string) string {
	return strings.ToUpper(application.EnvPrefix + "_" + section + "_" + key)
}

// Save writes cfg to path as ini.
func Save(cfg model.Config, path string) error {
	if err := toFile(cfg).SaveTo(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Write renders cfg as ini to w.
func Write(cfg model.Config, w io.Writer) error {
	_, err := toFile(cfg).WriteTo(w)

	return err
}

// toFile renders cfg with human readable durations.
func toFile(cfg model.Config) *ini.File {
	f := ini.Empty()

	booking := f.Section("booking")
	booking.Key("delay").SetValue(cfg.Booking.Delay.String())
	booking.Key("failure_rate").SetValue(strconv.FormatFloat(cfg.Booking.FailureRate, 'f', -1, 64))
	booking.Key("highlight").SetValue(cfg.Booking.Highlight.String())

	f.Section("catalog").Key("load_delay").SetValue(cfg.Catalog.LoadDelay.String())

	st := f.Section("store")
	st.Key("backend").SetValue(cfg.Store.Backend)
	st.Key("path").SetValue(cfg.Store.Path)
	st.Key("redis_url").SetValue(cfg.Store.RedisURL)

	lg := f.Section("log")
	lg.Key("level").SetValue(cfg.Log.Level)
	lg.Key("format").SetValue(cfg.Log.Format)

	return f
}

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Use ini key names in error messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("ini"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, trans)
}

// Validate checks ranges and enumerations.
func Validate(cfg model.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		// Namespace is Config.booking.failure_rate
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}

		fields[ns] = fe.Translate(trans)
	}

	return &ValidationError{Fields: fields}
}
