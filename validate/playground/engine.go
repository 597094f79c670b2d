package playground

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	esTranslations "github.com/go-playground/validator/v10/translations/es"
	frTranslations "github.com/go-playground/validator/v10/translations/fr"
	"golang.org/x/text/language"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

type locale struct {
	tag      language.Tag
	lang     locales.Translator
	register func(v *validator.Validate, trans ut.Translator) error
}

// The first entry is the fallback locale.
var supported = []locale{
	{tag: language.English, lang: en.New(), register: enTranslations.RegisterDefaultTranslations},
	{tag: language.Spanish, lang: es.New(), register: esTranslations.RegisterDefaultTranslations},
	{tag: language.French, lang: fr.New(), register: frTranslations.RegisterDefaultTranslations},
}

// Engine bundles a validator instance with its translators.
// It is safe for concurrent use once configured; rule registration
// belongs to setup.
type Engine struct {
	validate    *validator.Validate
	translators []ut.Translator
	matcher     language.Matcher
}

// NewEngine creates an engine with required-struct validation enabled, json
// tag names in field paths and default translations for every supported locale.
func NewEngine() (*Engine, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonTagName)

	fallback := supported[0].lang
	langs := make([]locales.Translator, 0, len(supported))
	for _, l := range supported {
		langs = append(langs, l.lang)
	}
	uni := ut.New(fallback, langs...)

	tags := make([]language.Tag, 0, len(supported))
	translators := make([]ut.Translator, 0, len(supported))
	for _, l := range supported {
		trans, ok := uni.GetTranslator(l.lang.Locale())
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTranslatorNotFound, l.lang.Locale())
		}
		if err := l.register(v, trans); err != nil {
			return nil, fmt.Errorf("register %s translations: %w", l.lang.Locale(), err)
		}
		tags = append(tags, l.tag)
		translators = append(translators, trans)
	}

	return &Engine{
		validate:    v,
		translators: translators,
		matcher:     language.NewMatcher(tags),
	}, nil
}

// Validator exposes the underlying validator, e.g. for RegisterValidation or
// RegisterStructValidation during setup.
func (e *Engine) Validator() *validator.Validate {
	return e.validate
}

// RegisterRule adds a validation tag together with its English message.
// The message may reference the field name as {0}. Other locales report the
// library's generic message for the tag.
//
// RegisterRule must not run concurrently with validation: call it during
// setup, before the engine serves requests.
func (e *Engine) RegisterRule(tag string, fn validator.Func, message string) error {
	if err := e.validate.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("register rule %q: %w", tag, err)
	}

	return e.validate.RegisterTranslation(tag, e.translators[0],
		func(trans ut.Translator) error {
			return trans.Add(tag, message, true)
		},
		func(trans ut.Translator, fe validator.FieldError) string {
			msg, err := trans.T(fe.Tag(), fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

// Translator picks the translator best matching the request's
// Accept-Language header. A nil request gets the English translator.
func (e *Engine) Translator(r *http.Request) ut.Translator {
	if r == nil {
		return e.translators[0]
	}
	return e.TranslatorFor(r.Header.Get("Accept-Language"))
}

// TranslatorFor picks the translator best matching an Accept-Language value.
func (e *Engine) TranslatorFor(acceptLanguage string) ut.Translator {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return e.translators[0]
	}
	_, idx, _ := e.matcher.Match(tags...)
	if idx < 0 || idx >= len(e.translators) {
		return e.translators[0]
	}
	return e.translators[idx]
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

var (
	defaultOnce   sync.Once
	defaultEngine atomic.Pointer[Engine]
)

// Default returns the package engine, building it on first use.
func Default() *Engine {
	if e := defaultEngine.Load(); e != nil {
		return e
	}
	defaultOnce.Do(func() {
		e, err := NewEngine()
		if err != nil {
			panic(fmt.Sprintf("playground: build default engine: %v", err))
		}
		defaultEngine.CompareAndSwap(nil, e)
	})
	return defaultEngine.Load()
}

// SetEngine replaces the package engine. Call it during application setup.
// A nil engine is ignored.
func SetEngine(e *Engine) {
	if e != nil {
		defaultEngine.Store(e)
	}
}
