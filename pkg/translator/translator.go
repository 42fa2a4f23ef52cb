package translator

import (
	"fmt"
	"os"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.French})

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		filepath := fmt.Sprintf("%s/%s", cfg.TranslationFolder, f.Name())

		if _, err := Translator.LoadMessageFile(filepath); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// MatchLanguage picks the best supported language for an Accept-Language
// header value, falling back to English.
func MatchLanguage(acceptLanguage string) string {
	if acceptLanguage == "" {
		return LanguageEn
	}
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	if base.String() == LanguageFr {
		return LanguageFr
	}
	return LanguageEn
}

// Localize translates msgKey, returning the key itself when no translation
// exists so pages never render blank.
func Localize(msgKey string, lang string, data map[string]any) string {
	if Translator == nil {
		return msgKey
	}

	l := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    msgKey,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
