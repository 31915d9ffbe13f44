// Package i18n selects the message language for error envelopes from the
// Accept-Language header and holds the localized pipeline messages.
package i18n

import (
	"fmt"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	"golang.org/x/text/language"
)

// HeaderAcceptLanguage is the request header the message language is read from.
const HeaderAcceptLanguage = "Accept-Language"

// Message keys shared by the authorization and validation gates.
const (
	KeyTokenUnspecified = "token_unspecified"
	KeyTokenRevoked     = "token_revoked"
	KeyTokenExpired     = "token_expired"
	KeyUserNotFound     = "user_not_found"
	KeyRoleUnspecified  = "role_unspecified"
	KeyNotAllowed       = "not_allowed"
	KeyInvalidPayload   = "invalid_payload"
	KeyBankExists       = "bank_exists"
	KeyBankNotFound     = "bank_not_found"
)

var messages = map[string]map[string]string{
	"es": {
		KeyTokenUnspecified: "Token no especificado",
		KeyTokenRevoked:     "El token ha sido revocado",
		KeyTokenExpired:     "El token ha expirado",
		KeyUserNotFound:     "Usuario no encontrado",
		KeyRoleUnspecified:  "El usuario no tiene un rol asignado",
		KeyNotAllowed:       "No tiene permisos para realizar esta acción",
		KeyInvalidPayload:   "La solicitud no es válida",
		KeyBankExists:       "Ya existe un banco con ese código",
		KeyBankNotFound:     "Banco no encontrado",
	},
	"en": {
		KeyTokenUnspecified: "Token not specified",
		KeyTokenRevoked:     "Token has been revoked",
		KeyTokenExpired:     "Token has expired",
		KeyUserNotFound:     "User not found",
		KeyRoleUnspecified:  "User has no role assigned",
		KeyNotAllowed:       "You are not allowed to perform this action",
		KeyInvalidPayload:   "Invalid request",
		KeyBankExists:       "A bank with that code already exists",
		KeyBankNotFound:     "Bank not found",
	},
}

type registerFunc func(v *validator.Validate, trans ut.Translator) error

var supported = []struct {
	locale   locales.Translator
	register registerFunc
}{
	{es.New(), es_translations.RegisterDefaultTranslations},
	{en.New(), en_translations.RegisterDefaultTranslations},
}

// Bundle resolves translators for the recognized locales. Unrecognized or
// missing Accept-Language values fall back to the default locale. It owns the
// validator its translations were registered on.
type Bundle struct {
	uni      *ut.UniversalTranslator
	fallback ut.Translator
	validate *validator.Validate
}

// New builds the bundle and registers the validator's default translations
// for every recognized locale on v.
func New(v *validator.Validate, defaultLocale string) (*Bundle, error) {
	if v == nil {
		return nil, fmt.Errorf("i18n: nil validator")
	}

	var fallback locales.Translator
	all := make([]locales.Translator, 0, len(supported))
	for _, s := range supported {
		all = append(all, s.locale)
		if s.locale.Locale() == defaultLocale {
			fallback = s.locale
		}
	}
	if fallback == nil {
		return nil, fmt.Errorf("i18n: unsupported default locale %q", defaultLocale)
	}

	uni := ut.New(fallback, all...)
	for _, s := range supported {
		trans, _ := uni.GetTranslator(s.locale.Locale())
		for key, text := range messages[s.locale.Locale()] {
			if err := trans.Add(key, text, true); err != nil {
				return nil, fmt.Errorf("i18n: add %s/%s: %w", s.locale.Locale(), key, err)
			}
		}
		if err := s.register(v, trans); err != nil {
			return nil, fmt.Errorf("i18n: register validator translations %s: %w", s.locale.Locale(), err)
		}
	}

	trans, _ := uni.GetTranslator(defaultLocale)
	return &Bundle{uni: uni, fallback: trans, validate: v}, nil
}

// Validator returns the validator whose messages this bundle translates.
func (b *Bundle) Validator() *validator.Validate {
	return b.validate
}

// For returns the translator for the first recognized language in an
// Accept-Language header value.
func (b *Bundle) For(acceptLanguage string) ut.Translator {
	if acceptLanguage == "" {
		return b.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return b.fallback
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		if trans, found := b.uni.GetTranslator(base.String()); found {
			return trans
		}
	}
	return b.fallback
}

// Message returns the localized text for key, or the key itself when no
// translation exists.
func (b *Bundle) Message(acceptLanguage, key string) string {
	msg, err := b.For(acceptLanguage).T(key)
	if err != nil {
		return key
	}
	return msg
}
