package parameters

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	tagMember      = "member"
	tagLteUltimate = "lte_ultimate"
	tagLteYielding = "lte_yielding"
)

var translations = []struct {
	tag  string
	text string
}{
	{tag: "gte", text: "{0} = {1} must be greater than or equal to {2}"},
	{tag: tagMember, text: "{0} = {1} is not one of [{2}]"},
	{tag: tagLteUltimate, text: "{0} = {1} exceeds ultimate = {2}"},
	{tag: tagLteYielding, text: "{0} = {1} exceeds the smallest yielding rotation = {2}"},
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterCustomTypeFunc(optionalFloatValue, OptionalFloat{})
	if err := validate.RegisterValidation(tagMember, isMember); err != nil {
		return nil, nil, fmt.Errorf("failed to register %s validation: %w", tagMember, err)
	}
	validate.RegisterStructValidation(validateRotation, Rotation{})
	validate.RegisterStructValidation(validateNodeParameters, NodeParameters{})

	for _, t := range translations {
		if err := validate.RegisterTranslation(t.tag, trans, func(ut ut.Translator) error {
			return ut.Add(t.tag, t.text, true)
		}, translateFieldError); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s translation: %w", t.tag, err)
		}
	}

	return validate, trans, nil
}

func translateFieldError(trans ut.Translator, fe validator.FieldError) string {
	param := fe.Param()
	if e, ok := fe.Value().(enumerated); ok {
		param = strings.Join(e.Allowed(), ", ")
	}
	t, err := trans.T(fe.Tag(), fieldPath(fe), formatValue(fe.Value()), param)
	if err != nil {
		return fe.Error()
	}
	return t
}

func isMember(fl validator.FieldLevel) bool {
	e, ok := fl.Field().Interface().(enumerated)
	return ok && e.Valid()
}

// validateRotation enforces yielding <= ultimate. Negative values are left
// to the per-field rule so they are reported once.
func validateRotation(sl validator.StructLevel) {
	r := sl.Current().Interface().(Rotation)
	if r.Yielding < 0 || r.Ultimate < 0 {
		return
	}
	if r.Yielding > r.Ultimate {
		sl.ReportError(r.Yielding, "yielding", "Yielding", tagLteUltimate, formatFloat(r.Ultimate))
	}
}

// validateNodeParameters enforces that cracking precedes yielding in both
// node categories.
func validateNodeParameters(sl validator.StructLevel) {
	n := sl.Current().Interface().(NodeParameters)
	smallest := min(n.ExternalRotation.Yielding, n.InternalRotation.Yielding)
	if smallest < 0 || n.CrackingRotation < 0 {
		return
	}
	if n.CrackingRotation > smallest {
		sl.ReportError(n.CrackingRotation, "cracking_rotation", "CrackingRotation", tagLteYielding, formatFloat(smallest))
	}
}

// finding is an issue plus the document paths it depends on. It is dropped
// when any of those paths already failed the shape check.
type finding struct {
	issue Issue
	scope []string
}

func validateConfig(cfg *Config) ([]finding, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator() > %w", err)
	}

	err = validate.Struct(cfg)
	if err == nil {
		return nil, nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, fmt.Errorf("validate.Struct() > %w", err)
	}

	findings := make([]finding, 0, len(validationErrors))
	for _, fe := range validationErrors {
		kind := KindRangeInvariant
		if fe.Tag() == tagMember {
			kind = KindEnumMembership
		}
		p := fieldPath(fe)
		findings = append(findings, finding{
			issue: Issue{
				Kind:    kind,
				Path:    p,
				Value:   formatValue(fe.Value()),
				Message: fe.Translate(trans),
			},
			scope: scopeOf(fe.Tag(), p),
		})
	}
	return findings, nil
}

func scopeOf(tag, p string) []string {
	parent := path.Dir(strings.ReplaceAll(p, ".", "/"))
	parent = strings.ReplaceAll(parent, "/", ".")
	switch tag {
	case tagLteUltimate:
		return []string{parent}
	case tagLteYielding:
		return []string{
			p,
			parent + ".external_node_rotation.yielding",
			parent + ".internal_node_rotation.yielding",
		}
	}
	return []string{p}
}

// fieldPath strips the root type name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func formatValue(v any) string {
	switch value := v.(type) {
	case float64:
		return formatFloat(value)
	case nil:
		return "null"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return strconv.Quote(rv.String())
	}
	return fmt.Sprint(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
